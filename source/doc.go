// Package source lifts a random-access storage backend into a leaf node
// of the lazy transformation graph.
//
// What
//
//   - Wrap adapts any core.Source (length + positional read) into a
//     core.MapDataset leaf.
//   - Length is delegated to the backend on every call — never cached.
//   - Integer positions wrap modulo the backend length, so a leaf reads
//     as an effectively cyclic sequence: At(0) == At(L) == At(-L).
//   - Slicing delegates to core.NewSlice, producing a lazy view.
//   - Each leaf exposes RecordLineage, the hook package lineage fires
//     when auditing a pipeline. The default is a deliberate no-op;
//     install recording explicitly via WithOnLineage.
//
// Why
//
//   - A single adapter gives every storage backend the full node
//     contract (constant-time length, deterministic index mapping,
//     composability under slicing) without per-backend glue.
//   - Downstream consumers that oversample or iterate cyclically need
//     no wraparound logic of their own.
//
// Ownership
//
//	A leaf holds its backend exclusively and never mutates it — the only
//	calls made are Len() and At(position) with position in-range. The
//	backend must outlive the leaf. Wrapping one backend in two leaves
//	with different assumed semantics is a caller bug.
//
// Errors
//
//   - core.ErrEmptySource — integer access against a zero-length backend.
//   - Backend errors from At/Len pass through unmodified; the adapter
//     adds no wrapping, retries, or recovery.
//
// Complexity
//
//   - Wrap: O(1), no eager validation (the backend length is not even
//     queried at construction).
//   - Len/At: O(1) plus the backend's own cost.
//
// Usage
//
//	ds := source.Wrap[string](backend)
//	elem, err := ds.At(5)            // wraps modulo backend.Len()
//	view := ds.Slice(core.NewSpan(1, 3))
package source
