package scenariotree

import "github.com/specialistvlad/scenariotree/internal/source"

// Option configures Construct and Load.
type Option func(*options)

type options struct {
	uniqueIDs bool
	source    *source.Source
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithUniqueIDs rejects trees in which two records share a node_id. Without
// it the record visited later replaces the earlier one in the lookup.
func WithUniqueIDs() Option {
	return func(o *options) {
		o.uniqueIDs = true
	}
}

// WithSource makes Load read datasets through src instead of the default
// source.
func WithSource(src *source.Source) Option {
	return func(o *options) {
		o.source = src
	}
}
