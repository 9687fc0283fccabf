package scenario

import (
	"github.com/learnstructures/singly"
	"github.com/learnstructures/singly/trace"
)

type options struct {
	trace    *trace.Scenario
	list     []singly.Option
	failFast bool
}

// Option contains configuration values for Run and RunAll
type Option func(o *options)

// WithTrace appends hooks of t to the scenario trace
func WithTrace(t trace.Scenario, opts ...trace.ScenarioComposeOption) Option {
	return func(o *options) {
		o.trace = o.trace.Compose(&t, opts...)
	}
}

// WithListTrace appends hooks of t to the trace of every replayed list
func WithListTrace(t trace.List, opts ...trace.ListComposeOption) Option {
	return func(o *options) {
		o.list = append(o.list, singly.WithTrace(t, opts...))
	}
}

// WithFailFast stops a scenario at the first mismatch.
// In RunAll the first failed scenario cancels the others.
func WithFailFast() Option {
	return func(o *options) {
		o.failFast = true
	}
}

func newOptions(opts ...Option) options {
	o := options{
		trace: &trace.Scenario{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
