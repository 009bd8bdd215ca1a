package form

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-authform/pkg/model"
)

// Submitter receives a validated snapshot. Returning an error blocks the
// submission; a *validation.FieldError is shown on its field.
type Submitter interface {
	Submit(ctx context.Context, snapshot model.FormSnapshot) error
}

// SubmitterFunc adapts a function into a Submitter.
type SubmitterFunc func(ctx context.Context, snapshot model.FormSnapshot) error

// Submit calls the underlying function.
func (fn SubmitterFunc) Submit(ctx context.Context, snapshot model.FormSnapshot) error {
	return fn(ctx, snapshot)
}

// SubmitHandler observes accepted submissions.
type SubmitHandler func(snapshot model.FormSnapshot)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger. Field values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSubmitter hands accepted snapshots to s before the form resets.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) {
		c.submitter = s
	}
}

// WithSubmitHandler registers a handler for the submitted event. Handlers
// run in registration order.
func WithSubmitHandler(h SubmitHandler) Option {
	return func(c *Controller) {
		if h != nil {
			c.handlers = append(c.handlers, h)
		}
	}
}

// WithMetrics records submit outcomes and field errors.
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}
