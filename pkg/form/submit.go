package form

import (
	"context"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

// SubmitStatus is the outcome of a submit attempt.
type SubmitStatus int

const (
	SubmitBlocked SubmitStatus = iota
	SubmitAccepted
)

func (s SubmitStatus) String() string {
	if s == SubmitAccepted {
		return "accepted"
	}
	return "blocked"
}

// SubmitResult carries the outcome and the snapshot it applies to. Accepted
// results hold the submitted values; blocked results hold the current state
// including the errors that blocked it.
type SubmitResult struct {
	Status   SubmitStatus
	Snapshot model.FormSnapshot
}

// Accepted reports whether the submission went through.
func (r SubmitResult) Accepted() bool {
	return r.Status == SubmitAccepted
}

// Submit re-validates every field and, when the form is valid, hands the
// snapshot to the Submitter and the submit handlers before resetting.
//
// A blocked submit with a nil error means validation failed. A non-nil
// error means the submit was refused (ErrSubmitInFlight), the context was
// done, or the Submitter failed; state is kept in all of those cases.
func (c *Controller) Submit(ctx context.Context) (SubmitResult, error) {
	if ctx == nil {
		return SubmitResult{}, ErrNilContext
	}

	c.mu.Lock()
	if c.pending {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.metrics.observeSubmit(c.def.Name, OutcomeInFlight)
		c.logger.Debug("form submit refused", "form", c.def.Name, "reason", "in flight")
		return SubmitResult{Status: SubmitBlocked, Snapshot: snap}, ErrSubmitInFlight
	}
	if err := ctx.Err(); err != nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return SubmitResult{Status: SubmitBlocked, Snapshot: snap}, err
	}

	for _, field := range c.def.Fields {
		c.touched[field] = true
		c.validateLocked(field, true)
	}
	if c.def.TrackStrength && c.def.has(model.FieldPassword) {
		c.passwordChangedLocked()
	}
	snap := c.snapshotLocked()
	if !snap.IsValid() {
		c.mu.Unlock()
		c.metrics.observeSubmit(c.def.Name, OutcomeBlocked)
		c.logger.Debug("form submit blocked", "form", c.def.Name, "errors", len(snap.Errors))
		return SubmitResult{Status: SubmitBlocked, Snapshot: snap}, nil
	}
	c.pending = true
	submitter := c.submitter
	handlers := append([]SubmitHandler(nil), c.handlers...)
	c.mu.Unlock()

	// a panicking submitter or handler must not leave the form locked
	settled := false
	defer func() {
		if settled {
			return
		}
		c.mu.Lock()
		c.pending = false
		c.mu.Unlock()
	}()

	if submitter != nil {
		if err := submitter.Submit(ctx, snap.Clone()); err != nil {
			settled = true
			return c.rejectSubmit(err)
		}
	}

	for _, h := range handlers {
		h(snap.Clone())
	}

	c.mu.Lock()
	c.resetLocked()
	c.pending = false
	settled = true
	c.mu.Unlock()

	c.metrics.observeSubmit(c.def.Name, OutcomeAccepted)
	c.logger.Info("form submitted", "form", c.def.Name)
	return SubmitResult{Status: SubmitAccepted, Snapshot: snap}, nil
}

func (c *Controller) rejectSubmit(err error) (SubmitResult, error) {
	c.mu.Lock()
	c.pending = false
	if fieldErr, ok := validation.AsFieldError(err); ok && c.def.has(fieldErr.Field) {
		c.errors[fieldErr.Field] = fieldErr.Message
		c.metrics.observeFieldError(c.def.Name, fieldErr.Field)
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.metrics.observeSubmit(c.def.Name, OutcomeRejected)
	c.logger.Warn("form submit rejected", "form", c.def.Name, "error", err)
	return SubmitResult{Status: SubmitBlocked, Snapshot: snap}, err
}
