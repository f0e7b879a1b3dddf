// Package source implements the graph-leaf adapter over a core.Source
// backend: cyclic integer resolution, lazy slicing, and the lineage
// recording hook.
package source

import (
	"fmt"

	"github.com/katalvlaran/lvldata/core"
)

// Dataset is a leaf node of the transformation graph, adapting a
// caller-supplied storage backend to the core.MapDataset contract.
// It is immutable after construction, holds the backend exclusively,
// and adds no locking: reads are exactly as concurrency-safe as the
// backend's own Len/At.
type Dataset[T any] struct {
	backend   core.Source[T] // exclusively owned, never mutated
	onLineage func()         // nil means the default no-op hook
}

// Wrap constructs a leaf over backend. No validation happens eagerly —
// the backend length is not queried, and a zero-length backend is
// accepted; validity is deferred to access time, where an empty leaf
// fails with core.ErrEmptySource. O(1).
func Wrap[T any](backend core.Source[T], opts ...Option) *Dataset[T] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Dataset[T]{backend: backend, onLineage: o.OnLineage}
}

// Len reports the backend's current length. Delegated on every call,
// never cached, so a backend whose length changes out-of-band is
// reflected immediately. O(1) provided the backend's Len is O(1).
func (d *Dataset[T]) Len() int {
	return d.backend.Len()
}

// At resolves an integer position to an element. Any integer is valid
// against a non-empty backend: the effective position is
// ((position mod L)+L) mod L for L = Len(), so At(0) == At(L) == At(-L).
// Returns core.ErrEmptySource when the backend is empty; backend errors
// pass through unmodified.
func (d *Dataset[T]) At(position int) (T, error) {
	p, err := core.WrapPosition(position, d.backend.Len())
	if err != nil {
		var zero T
		return zero, err
	}

	return d.backend.At(p)
}

// Slice returns a lazy view of this leaf through span, delegating to
// the shared slice-construction operation. O(1), no copying.
func (d *Dataset[T]) Slice(span core.Span) core.MapDataset[T] {
	return core.NewSlice[T](d, span)
}

// RecordLineage records this leaf's provenance. The default is a
// deliberate no-op placeholder: it establishes the extension point
// without mandating what recording means. Install a concrete recorder
// with WithOnLineage.
func (d *Dataset[T]) RecordLineage() {
	if d.onLineage != nil {
		d.onLineage()
	}
}

// String identifies the leaf and its wrapped backend for graph
// debugging: the backend's own String when it has one, its dynamic
// type otherwise.
func (d *Dataset[T]) String() string {
	if s, ok := d.backend.(fmt.Stringer); ok {
		return fmt.Sprintf("Source(%s)", s)
	}

	return fmt.Sprintf("Source(%T)", d.backend)
}

var (
	_ core.MapDataset[struct{}] = (*Dataset[struct{}])(nil)
	_ core.LineageRecorder      = (*Dataset[struct{}])(nil)
)
