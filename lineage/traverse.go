// Package lineage implements the graph walk firing source-leaf
// recording hooks.
package lineage

import (
	"github.com/katalvlaran/lvldata/core"
)

// walker encapsulates state during one traversal.
type walker struct {
	opts    Options
	visited map[core.Node]struct{}
	res     *Report
}

// Traverse walks the graph rooted at root and fires RecordLineage on
// every reachable source leaf, exactly once per leaf per call. Nodes
// are visited once by identity, so a leaf shared between two branches
// is still recorded once.
//
// A node exposing core.ChildLister is descended into; a node exposing
// core.LineageRecorder has its hook fired; a node exposing both gets
// both. A node exposing neither fails the walk with a StructuralError —
// auditing must not silently skip parts of a pipeline.
//
// Returns the Report accumulated up to the failure point alongside any
// error, mirroring partial traversal results.
func Traverse(root core.Node, opts ...Option) (*Report, error) {
	// 1. Validate input.
	if root == nil {
		return nil, ErrNilRoot
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Walk from the root at depth 0.
	w := &walker{
		opts:    o,
		visited: make(map[core.Node]struct{}),
		res:     &Report{},
	}
	if err := w.walk(root, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// walk visits node at the given depth, recursing into children.
// Ordering across siblings follows the ChildLister's slice order but is
// not part of the contract.
func (w *walker) walk(node core.Node, depth int) error {
	// Enumerating a nil child is a structural defect of the parent.
	if node == nil {
		return StructuralError{Node: nil}
	}

	// Each distinct node is processed at most once per traversal.
	if _, seen := w.visited[node]; seen {
		return nil
	}
	w.visited[node] = struct{}{}

	if depth > w.res.Depth {
		w.res.Depth = depth
	}

	lister, hasChildren := node.(core.ChildLister)
	recorder, hasHook := node.(core.LineageRecorder)
	if !hasChildren && !hasHook {
		return StructuralError{Node: node}
	}

	// Leaf duties: fire the node's own hook, then the caller's.
	if hasHook {
		recorder.RecordLineage()
		w.res.Sources = append(w.res.Sources, node)
		if w.opts.OnSource != nil {
			if err := w.opts.OnSource(node); err != nil {
				return err
			}
		}
	}

	// Composed-node duties: descend.
	if hasChildren {
		for _, child := range lister.Children() {
			if err := w.walk(child, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
