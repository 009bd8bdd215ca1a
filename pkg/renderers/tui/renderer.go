package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-authform/pkg/form"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

// Renderer prompts for form fields in the terminal.
type Renderer struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
	logger      *slog.Logger
}

// New constructs a TUI renderer with defaults (survey driver, default theme,
// unlimited attempts).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver: NewSurveyDriver(nil),
		theme:  DefaultTheme,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// Run prompts every field of ctrl and submits until the submit is accepted,
// the user aborts, or the attempt limit is reached. The last result is
// returned in every case.
func (r *Renderer) Run(ctx context.Context, ctrl *form.Controller) (form.SubmitResult, error) {
	if ctx == nil {
		return form.SubmitResult{}, errors.New("tui: context is required")
	}
	if ctrl == nil {
		return form.SubmitResult{}, ErrNilController
	}

	pending := ctrl.Fields()
	for attempt := 1; ; attempt++ {
		for _, field := range pending {
			if err := r.promptField(ctx, ctrl, field); err != nil {
				return form.SubmitResult{Snapshot: ctrl.Snapshot()}, err
			}
		}

		result, err := ctrl.Submit(ctx)
		if result.Accepted() {
			r.logger.Debug("tui submit accepted", "form", ctrl.Name(), "attempts", attempt)
			return result, r.info(ctx, fmt.Sprintf("%s submitted.", formTitle(ctrl.Name())))
		}
		r.logger.Debug("tui submit blocked", "form", ctrl.Name(), "attempt", attempt, "errors", len(result.Snapshot.Errors))

		if err != nil {
			if ctx.Err() != nil {
				return result, err
			}
			if _, routed := validation.AsFieldError(err); !routed {
				retry, cerr := r.driver.Confirm(ctx, ConfirmConfig{
					Message: fmt.Sprintf("Submit failed (%v). Try again?", err),
					Default: true,
				})
				if cerr != nil {
					return result, cerr
				}
				if !retry {
					return result, err
				}
			}
		}

		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return result, ErrTooManyAttempts
		}

		pending = failingFields(result.Snapshot)
		for _, field := range pending {
			if err := r.fieldError(ctx, field, result.Snapshot.Error(field)); err != nil {
				return result, err
			}
		}
	}
}

func (r *Renderer) promptField(ctx context.Context, ctrl *form.Controller, field model.FieldName) error {
	for {
		cfg := InputConfig{Message: field.Label()}
		var (
			response string
			err      error
		)
		if field.Secret() {
			response, err = r.driver.Password(ctx, cfg)
		} else {
			cfg.Default = ctrl.Value(field)
			response, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		if err := ctrl.SetValue(field, response); err != nil {
			return err
		}
		if err := ctrl.Blur(field); err != nil {
			return err
		}

		if field == model.FieldPassword && ctrl.TracksStrength() {
			if level := ctrl.Strength(); level != model.StrengthNone {
				if err := r.info(ctx, "Password strength: "+level.String()); err != nil {
					return err
				}
			}
		}

		msg := ctrl.Error(field)
		if msg == "" {
			return nil
		}
		if err := r.fieldError(ctx, field, msg); err != nil {
			return err
		}
	}
}

func (r *Renderer) fieldError(ctx context.Context, field model.FieldName, msg string) error {
	if msg == "" {
		return nil
	}
	return r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, field.Label(), msg))
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func failingFields(snap model.FormSnapshot) []model.FieldName {
	var out []model.FieldName
	for _, field := range snap.Fields {
		if snap.Error(field) != "" || snap.Value(field) == "" {
			out = append(out, field)
		}
	}
	return out
}

func formTitle(name string) string {
	switch name {
	case form.FormSignUp:
		return "Sign up"
	case form.FormSignIn:
		return "Sign in"
	default:
		return "Form"
	}
}
