// Package core defines the central contracts of a lazy dataset
// transformation graph: the Source capability for random-access storage,
// the MapDataset node interface every graph node satisfies, the closed
// Index sum type (Position | Span), and the uniform resolution rules
// (modulo wraparound, Python-style slicing) that every node honors.
//
// A pipeline is a rooted tree of nodes. Leaves wrap storage backends
// (see package source); inner nodes derive their elements from their
// children on demand. Nothing is materialized eagerly: constructing a
// node is O(1), and element access flows from the root down to a leaf,
// which performs the single storage read.
//
// The contract every node must honor:
//
//   - Len() is O(1), side-effect free, and never cached by wrappers.
//   - Integer positions wrap modulo the current length, so any node can
//     be consumed as an effectively cyclic sequence (oversampling,
//     epoch repeats) without per-consumer wraparound logic. Accessing a
//     zero-length node is the one defined failure: ErrEmptySource.
//   - Slicing produces a new node viewing the same data; no copying.
//   - A node exposes either children (ChildLister) or a lineage hook
//     (LineageRecorder) so package lineage can audit any graph shape.
//
// Errors:
//
//	ErrEmptySource      - integer resolution against a zero-length node.
//	ErrUnsupportedIndex - Resolve called with neither Position nor Span.
//
// Concurrency: core owns no locks and no shared mutable state. Nodes
// are immutable after construction; graph reads are exactly as safe as
// the wrapped backends' Len/At implementations.
package core
