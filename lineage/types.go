// Package lineage defines types, options, and errors for lineage
// traversal over transformation graphs.
package lineage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvldata/core"
)

var (
	// ErrNilRoot is returned when Traverse is called with a nil root.
	ErrNilRoot = errors.New("lineage: root node is nil")

	// ErrStructuralViolation indicates a visited node exposes neither
	// child enumeration nor a lineage-recording hook. Such a node cannot
	// participate in auditing, and skipping it silently would defeat the
	// purpose of lineage, so traversal fails at it. Returned wrapped in
	// a StructuralError naming the offender.
	ErrStructuralViolation = errors.New("lineage: structural contract violation")
)

// StructuralError identifies the node that broke the traversal
// contract. It unwraps to ErrStructuralViolation for errors.Is checks.
type StructuralError struct {
	// Node is the offending node; nil when a nil child was enumerated.
	Node core.Node
}

// Error renders the offending node's identity.
func (e StructuralError) Error() string {
	if e.Node == nil {
		return "lineage: nil node enumerated in graph"
	}

	return fmt.Sprintf("lineage: node %q exposes neither children nor a lineage hook", e.Node)
}

// Unwrap ties StructuralError to the ErrStructuralViolation sentinel.
func (e StructuralError) Unwrap() error {
	return ErrStructuralViolation
}

// Option configures optional behavior of lineage traversal.
// Use with Traverse(root, opts...).
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// OnSource, if non-nil, is invoked for each source leaf immediately
	// after its RecordLineage hook fires. Returning an error aborts the
	// traversal with that error.
	OnSource func(leaf core.Node) error
}

// DefaultOptions returns Options with no caller-side hook.
func DefaultOptions() Options {
	return Options{OnSource: nil}
}

// WithOnSource returns an Option installing fn as a per-leaf
// observation hook.
func WithOnSource(fn func(leaf core.Node) error) Option {
	return func(o *Options) {
		o.OnSource = fn
	}
}

// Report carries traversal diagnostics.
type Report struct {
	// Sources lists the source leaves visited, one entry per distinct
	// leaf, in an unspecified order.
	Sources []core.Node

	// Depth is the maximum node depth reached, with the root at 0.
	Depth int
}
