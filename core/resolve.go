// SPDX-License-Identifier: MIT
//
// File: resolve.go
// Role: Uniform index resolution shared by every graph node.
// Policy:
//   - WrapPosition is the single implementation of the modulo
//     wraparound contract; nodes delegate instead of reimplementing.
//   - Resolve dispatches exhaustively over the Index sum and never
//     inspects node internals.

package core

import "fmt"

// WrapPosition normalizes an arbitrary integer position against a
// dataset length, returning the effective position
// ((position mod length)+length) mod length in [0, length).
//
// This wraparound is the documented contract, not an accident: it lets
// any node be consumed as an effectively cyclic sequence (oversampling,
// cyclic epoch iteration) without per-consumer wraparound logic.
//
// Returns ErrEmptySource when length <= 0. O(1).
func WrapPosition(position, length int) (int, error) {
	if length <= 0 {
		return 0, ErrEmptySource
	}
	p := position % length
	if p < 0 {
		p += length
	}

	return p, nil
}

// Resolution is the outcome of resolving an Index against a node:
// exactly one of Elem (for Position) or View (for Span) is meaningful.
type Resolution[T any] struct {
	// Elem holds the resolved element when the index was a Position.
	Elem T

	// View holds the constructed slice node when the index was a Span;
	// nil for Position resolutions.
	View MapDataset[T]
}

// IsView reports whether the resolution produced a slice node rather
// than a single element.
func (r Resolution[T]) IsView() bool {
	return r.View != nil
}

// Resolve dispatches an Index against a node, exhaustively over the
// closed sum:
//
//   - Position → the node's At, with modulo wraparound; ErrEmptySource
//     on zero-length nodes; backend errors pass through unmodified.
//   - Span → the node's Slice, a new lazy view; never fails.
//   - anything else (a nil Index) → ErrUnsupportedIndex.
//
// Complexity: O(1) plus the cost of the delegated storage access.
func Resolve[T any](d MapDataset[T], ix Index) (Resolution[T], error) {
	switch v := ix.(type) {
	case Position:
		elem, err := d.At(int(v))
		if err != nil {
			return Resolution[T]{}, err
		}
		return Resolution[T]{Elem: elem}, nil
	case Span:
		return Resolution[T]{View: d.Slice(v)}, nil
	default:
		return Resolution[T]{}, fmt.Errorf("%w: %T", ErrUnsupportedIndex, ix)
	}
}
