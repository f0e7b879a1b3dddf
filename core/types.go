// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Central contracts — Source capability, node interfaces, sentinel errors.
// Policy:
//   - No algorithms here; resolution arithmetic lives in resolve.go/index.go.
//   - Interfaces are minimal capabilities, discovered by type assertion.
//   - Every exported symbol documents its contract and complexity.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for index resolution.
var (
	// ErrEmptySource indicates an integer resolution against a zero-length
	// dataset (modulo by zero). It signals "empty source accessed" and is
	// not recoverable locally.
	ErrEmptySource = errors.New("core: empty source: position resolution against zero length")

	// ErrUnsupportedIndex indicates Resolve was called with an Index that
	// is neither a Position nor a Span. Programming error at the call site.
	ErrUnsupportedIndex = errors.New("core: unsupported index type")
)

// Source is the capability a storage backend must satisfy to be wrapped
// into a graph leaf. It is a polymorphism boundary, not a component:
// core defines no error conditions of its own for it.
//
// Contract:
//   - Len returns the element count; O(1), side-effect free, and stable
//     for the lifetime of the backend instance.
//   - At is only ever called by this module with 0 <= position < Len().
//     Behavior outside that range is the backend's own business.
//   - Errors returned by At pass through the graph unwrapped.
type Source[T any] interface {
	// Len reports the total number of addressable elements. O(1).
	Len() int

	// At returns the element stored at position. The caller guarantees
	// 0 <= position < Len(). Backend-originated errors (disk, network)
	// are propagated to the consumer unmodified.
	At(position int) (T, error)
}

// Node is the least common denominator of every graph node: a printable
// identity. The diagnostic String must identify the node and, for
// leaves, describe the wrapped backend, so printed graph structures
// remain debuggable.
type Node interface {
	fmt.Stringer
}

// ChildLister is the capability every composed (non-leaf) node must
// expose so traversals can descend. Returning an empty slice is valid
// only for nodes that also expose LineageRecorder.
type ChildLister interface {
	// Children returns this node's direct child nodes. O(degree).
	Children() []Node
}

// LineageRecorder is the capability every source leaf must expose.
// RecordLineage is a zero-argument extension point: the default leaf
// implementation is a deliberate no-op, and concrete recording
// (logging, metrics, provenance capture) is opted into explicitly.
type LineageRecorder interface {
	// RecordLineage records this leaf's provenance. Must be safe to call
	// repeatedly; traversals call it exactly once per walk.
	RecordLineage()
}

// MapDataset is the base node capability set of the transformation
// graph: constant-time length, deterministic integer resolution with
// modulo wraparound, and slice-view construction. Every node — leaf or
// composed — satisfies it, which keeps the graph composable under
// slicing at arbitrary depth.
type MapDataset[T any] interface {
	Node

	// Len reports the node's current element count. O(1); never cached,
	// so backend length changes are visible immediately.
	Len() int

	// At resolves an integer position to an element. Any integer is
	// accepted: the effective position is ((position mod L)+L) mod L for
	// L = Len(), so out-of-natural-range and negative positions wrap.
	// Returns ErrEmptySource when Len() == 0.
	At(position int) (T, error)

	// Slice returns a new node viewing this node through span, with
	// Python-slice semantics. O(1); no data is copied or validated
	// eagerly — the view's length tracks this node's current length.
	Slice(span Span) MapDataset[T]
}
