package generate

import (
	"context"

	"github.com/olimci/rayforge/pkg/events"
)

func defaultOptions() *options {
	return &options{
		ctx:     context.Background(),
		handler: events.NoopHandler{},
	}
}

type options struct {
	ctx      context.Context
	handler  events.Handler
	progress func(step string, index, total int)
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*options)

// WithContext sets the context checked between steps.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithHandler routes generation events to handler.
func WithHandler(handler events.Handler) Option {
	return func(o *options) {
		if handler != nil {
			o.handler = handler
		}
	}
}

// WithProgress registers a callback invoked before each step runs, with
// the step id and its 1-based position out of the total.
func WithProgress(fn func(step string, index, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}
