package singly

import (
	"github.com/learnstructures/singly/trace"
)

type options struct {
	trace *trace.List
}

// Option contains configuration values for List
type Option func(o *options)

// WithTrace appends hooks of t to the list trace
func WithTrace(t trace.List, opts ...trace.ListComposeOption) Option {
	return func(o *options) {
		o.trace = o.trace.Compose(&t, opts...)
	}
}
