// SPDX-License-Identifier: MIT
//
// File: slice.go
// Role: The slice-view node every MapDataset's Slice delegates to.
// Policy:
//   - A view holds only its parent and span; length and bounds are
//     recomputed per call so parent length changes stay visible.
//   - Views are themselves full MapDataset nodes: they wrap, they
//     slice, and they expose their parent to lineage traversal.

package core

import "fmt"

// sliceDataset views its parent through a Span without copying data.
// Position k maps to parent position start + k*step after wrapping k
// against the view's own length.
type sliceDataset[T any] struct {
	parent MapDataset[T]
	span   Span
}

// NewSlice constructs the lazy view of parent through span. It is the
// slice-construction operation shared by every node's Slice method.
// Construction is O(1) and performs no validation: a span selecting
// nothing yields a zero-length view, and access to it fails with
// ErrEmptySource like any other empty node.
func NewSlice[T any](parent MapDataset[T], span Span) MapDataset[T] {
	return &sliceDataset[T]{parent: parent, span: span}
}

// Len reports the view's element count under the parent's current
// length. O(1); never cached.
func (s *sliceDataset[T]) Len() int {
	return s.span.Count(s.parent.Len())
}

// At resolves position within the view: wraps against the view length,
// then reads the mapped parent position. The mapped position is always
// in the parent's natural range, so the parent performs no second wrap.
func (s *sliceDataset[T]) At(position int) (T, error) {
	length := s.parent.Len()
	p, err := WrapPosition(position, s.span.Count(length))
	if err != nil {
		var zero T
		return zero, err
	}
	start, _, step := s.span.Bounds(length)

	return s.parent.At(start + p*step)
}

// Slice composes a further view on top of this one.
func (s *sliceDataset[T]) Slice(span Span) MapDataset[T] {
	return NewSlice[T](s, span)
}

// Children exposes the parent so lineage traversal descends through
// views down to the source leaves.
func (s *sliceDataset[T]) Children() []Node {
	return []Node{s.parent}
}

// String identifies the view and its parent for graph debugging.
func (s *sliceDataset[T]) String() string {
	return fmt.Sprintf("Slice(parent=%s, span=%s)", s.parent, s.span)
}

var (
	_ MapDataset[struct{}] = (*sliceDataset[struct{}])(nil)
	_ ChildLister          = (*sliceDataset[struct{}])(nil)
)
