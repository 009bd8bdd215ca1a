package form

import "errors"

var (
	// ErrSubmitInFlight is returned while a previous submit is still running.
	ErrSubmitInFlight = errors.New("form: submit already in flight")
	// ErrUnknownField is returned for fields the form does not define.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrNilContext is returned when Submit receives a nil context.
	ErrNilContext = errors.New("form: context is required")
)
