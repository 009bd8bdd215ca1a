package form

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/strength"
	"github.com/goliatone/go-authform/pkg/validation"
)

// Controller holds the state of one form instance. Every operation runs to
// completion under the controller lock; only the Submitter call runs outside
// it, guarded by the pending flag.
type Controller struct {
	mu  sync.Mutex
	def Definition

	values   map[model.FieldName]string
	errors   map[model.FieldName]string
	touched  map[model.FieldName]bool
	strength model.Strength
	pending  bool

	submitter Submitter
	handlers  []SubmitHandler
	logger    *slog.Logger
	metrics   *Metrics
}

// New constructs a controller for def with every field empty and untouched.
func New(def Definition, options ...Option) *Controller {
	if def.Rules == nil {
		def.Rules = validation.NewRegistry()
	}
	def.PasswordRules = def.PasswordRules.Normalize()

	c := &Controller{
		def:    def,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.resetLocked()
	return c
}

// NewSignUp is New(SignUp(rules), options...).
func NewSignUp(rules validation.RuleSet, options ...Option) *Controller {
	return New(SignUp(rules), options...)
}

// NewSignIn is New(SignIn(), options...).
func NewSignIn(options ...Option) *Controller {
	return New(SignIn(), options...)
}

// Name returns the form identifier.
func (c *Controller) Name() string {
	return c.def.Name
}

// Fields returns the form fields in display order.
func (c *Controller) Fields() []model.FieldName {
	return append([]model.FieldName(nil), c.def.Fields...)
}

// TracksStrength reports whether password strength feedback is live.
func (c *Controller) TracksStrength() bool {
	return c.def.TrackStrength
}

// SetValue records a new value for field. Errors are left alone; password
// strength and a touched confirmPassword are refreshed immediately.
func (c *Controller) SetValue(field model.FieldName, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(field); err != nil {
		return err
	}
	c.values[field] = value
	if field == model.FieldPassword {
		c.passwordChangedLocked()
	}
	return nil
}

// Blur marks field as touched and validates it.
func (c *Controller) Blur(field model.FieldName) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(field); err != nil {
		return err
	}
	c.touched[field] = true
	c.validateLocked(field, true)
	if field == model.FieldPassword {
		c.passwordChangedLocked()
	}
	return nil
}

// Reset clears values, errors, touched flags, and strength.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return ErrSubmitInFlight
	}
	c.resetLocked()
	return nil
}

// Value returns the current value of field.
func (c *Controller) Value(field model.FieldName) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[field]
}

// Error returns the current error of field; empty means none.
func (c *Controller) Error(field model.FieldName) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[field]
}

// Touched reports whether field has been blurred or submitted.
func (c *Controller) Touched(field model.FieldName) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched[field]
}

// Strength returns the live password strength.
func (c *Controller) Strength() model.Strength {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strength
}

// Pending reports whether a submit is in flight.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// IsValid reports whether every field has a value and no stored error is
// present. It does not run validators.
func (c *Controller) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked().IsValid()
}

// Snapshot returns a detached copy of the current state.
func (c *Controller) Snapshot() model.FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) editableLocked(field model.FieldName) error {
	if !c.def.has(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if c.pending {
		return ErrSubmitInFlight
	}
	return nil
}

func (c *Controller) passwordChangedLocked() {
	if c.def.TrackStrength {
		_, c.strength = strength.Score(c.values[model.FieldPassword], c.def.PasswordRules)
	}
	if c.def.has(model.FieldConfirmPassword) && c.touched[model.FieldConfirmPassword] {
		c.validateLocked(model.FieldConfirmPassword, false)
	}
}

// validateLocked stores the current error of field. observe counts a failure
// in the field error metric; live re-checks pass false.
func (c *Controller) validateLocked(field model.FieldName, observe bool) {
	msg, err := c.def.Rules.Validate(field, validation.ValueMap(c.values))
	if err != nil {
		// fields without a rule only need a value
		msg = ""
	}
	if msg == "" {
		delete(c.errors, field)
		return
	}
	c.errors[field] = msg
	if observe {
		c.metrics.observeFieldError(c.def.Name, field)
	}
}

func (c *Controller) resetLocked() {
	c.values = make(map[model.FieldName]string, len(c.def.Fields))
	for _, field := range c.def.Fields {
		c.values[field] = ""
	}
	c.errors = make(map[model.FieldName]string)
	c.touched = make(map[model.FieldName]bool)
	c.strength = model.StrengthNone
}

func (c *Controller) snapshotLocked() model.FormSnapshot {
	snap := model.FormSnapshot{
		Form:     c.def.Name,
		Fields:   append([]model.FieldName(nil), c.def.Fields...),
		Values:   make(map[model.FieldName]string, len(c.values)),
		Strength: c.strength,
	}
	for k, v := range c.values {
		snap.Values[k] = v
	}
	if len(c.errors) > 0 {
		snap.Errors = make(map[model.FieldName]string, len(c.errors))
		for k, v := range c.errors {
			snap.Errors[k] = v
		}
	}
	return snap
}
