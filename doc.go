// Package lvldata is your building kit for lazy, composable data-loading
// pipelines — indexable sources lifted into transformation graphs that
// compute elements on demand for training and evaluation feeding.
//
// 🚀 What is lvldata?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Source capability: wrap any random-access storage (length + indexed read)
//		• Graph leaves: cyclic index wraparound for oversampling & epoch repeats
//		• Slicing: Python-style views ([start:stop:step]) without copying data
//		• Lineage: walk any pipeline down to its source leaves for auditing
//
// ✨ Why choose lvldata?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – deterministic index mapping, O(1) lengths
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – plug lineage hooks (WithOnLineage, WithOnSource…) for custom auditing
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — node contracts, the index sum type, resolution & slice views
//	source/  — the leaf adapter lifting a storage backend into the graph
//	lineage/ — top-down traversal firing each source leaf's recording hook
//
// Quick ASCII example:
//
//	    Slice[0:2]
//	        │
//	     Source ──▶ backend{"a","b","c"}
//
//	a two-node pipeline: a backend wrapped as a leaf, viewed through a slice.
//
// Next up: transformation operators (map, batch), iterator checkpointing,
// and sharding helpers. Dive into the per-package docs for full examples.
//
//	go get github.com/katalvlaran/lvldata
package lvldata
