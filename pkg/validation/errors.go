package validation

import (
	"errors"

	"github.com/goliatone/go-authform/pkg/model"
)

// ErrUnknownField is returned when a field has no registered rule.
var ErrUnknownField = errors.New("validation: unknown field")

// FieldError attaches a message to a single field. Submitters return it to
// route backend outcomes (for example a taken username) to the field that
// caused them.
type FieldError struct {
	Field   model.FieldName
	Message string
}

// NewFieldError builds a FieldError.
func NewFieldError(field model.FieldName, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return e.Message
	}
	return e.Field.String() + ": " + e.Message
}

// AsFieldError unwraps err into a FieldError when possible.
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) && fieldErr != nil {
		return fieldErr, true
	}
	return nil, false
}
