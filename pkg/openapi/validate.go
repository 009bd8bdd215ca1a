package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

// ErrInvalidPayload is wrapped by every PayloadError.
var ErrInvalidPayload = errors.New("openapi: invalid payload")

// PayloadError reports the first field a payload failed on. Field is empty
// when the failure is not tied to a property (for example a non-object body).
type PayloadError struct {
	Field  model.FieldName
	Reason string
}

func (e *PayloadError) Error() string {
	if e.Field == "" {
		return "openapi: invalid payload: " + e.Reason
	}
	return fmt.Sprintf("openapi: invalid payload: %s: %s", e.Field, e.Reason)
}

func (e *PayloadError) Unwrap() error { return ErrInvalidPayload }

// ValidatePayload decodes a JSON payload and visits it with schema.
func ValidatePayload(schema *openapi3.Schema, payload []byte) error {
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return &PayloadError{Reason: "decode: " + err.Error()}
	}
	if err := schema.VisitJSON(value); err != nil {
		return payloadError(err)
	}
	return nil
}

// ValidateSignUp checks a sign-up body against SignUpSchema and then against
// the field validators, so messages match the interactive form.
func ValidateSignUp(rules validation.RuleSet, payload []byte) error {
	if err := ValidatePayload(SignUpSchema(rules), payload); err != nil {
		return err
	}
	return checkFields(validation.SignUpRegistry(rules), model.SignUpFields, payload)
}

// ValidateSignIn checks a sign-in body against SignInSchema.
func ValidateSignIn(payload []byte) error {
	if err := ValidatePayload(SignInSchema(), payload); err != nil {
		return err
	}
	return checkFields(validation.SignInRegistry(), model.SignInFields, payload)
}

// Marshal renders doc as "json" (default) or "yaml".
func Marshal(doc *openapi3.T, format string) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return append(data, '\n'), nil
	case "yaml", "yml":
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("openapi: encode: %w", err)
		}
		return yaml.Marshal(generic)
	default:
		return nil, fmt.Errorf("openapi: unsupported format %q", format)
	}
}

func checkFields(reg *validation.Registry, fields []model.FieldName, payload []byte) error {
	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		return &PayloadError{Reason: "decode: " + err.Error()}
	}
	values := make(validation.ValueMap, len(fields))
	for _, field := range fields {
		if s, ok := body[field.String()].(string); ok {
			values[field] = s
		}
	}
	errs := reg.ValidateAll(fields, values)
	for _, field := range fields {
		if msg := errs[field]; msg != "" {
			return &PayloadError{Field: field, Reason: msg}
		}
	}
	return nil
}

func payloadError(err error) error {
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return &PayloadError{Reason: err.Error()}
	}
	pe := &PayloadError{Reason: schemaErr.Reason}
	if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
		if field, ok := model.ParseFieldName(pointer[0]); ok {
			pe.Field = field
		}
	}
	return pe
}
