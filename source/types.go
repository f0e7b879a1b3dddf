// Package source defines option types for leaf construction.
package source

// Option configures optional behavior of a wrapped leaf.
// Use with Wrap(backend, opts...).
type Option func(*Options)

// Options holds configurable parameters of a leaf. Today that is only
// the lineage-recording hook; resolution behavior is contractual and
// not configurable.
type Options struct {
	// OnLineage, if non-nil, is invoked by RecordLineage each time a
	// lineage traversal reaches this leaf. Nil keeps the default no-op
	// placeholder. Implementations decide what recording means:
	// logging, metrics emission, or provenance capture are all valid.
	OnLineage func()
}

// DefaultOptions returns Options with the no-op lineage hook.
func DefaultOptions() Options {
	return Options{OnLineage: nil}
}

// WithOnLineage returns an Option installing fn as the leaf's
// lineage-recording implementation. Passing nil retains the no-op.
func WithOnLineage(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLineage = fn
		}
	}
}
