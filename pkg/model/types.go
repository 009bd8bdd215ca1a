package model

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// FieldName identifies one of the form inputs.
type FieldName string

const (
	FieldFirstName       FieldName = "firstName"
	FieldLastName        FieldName = "lastName"
	FieldUsername        FieldName = "username"
	FieldEmail           FieldName = "email"
	FieldPassword        FieldName = "password"
	FieldConfirmPassword FieldName = "confirmPassword"
)

// SignUpFields lists the sign-up inputs in display order.
var SignUpFields = []FieldName{
	FieldFirstName,
	FieldLastName,
	FieldUsername,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
}

// SignInFields lists the sign-in inputs in display order.
var SignInFields = []FieldName{
	FieldUsername,
	FieldPassword,
}

var fieldLabels = map[FieldName]string{
	FieldFirstName:       "First Name",
	FieldLastName:        "Last Name",
	FieldUsername:        "Username",
	FieldEmail:           "Email",
	FieldPassword:        "Password",
	FieldConfirmPassword: "Confirm Password",
}

// ParseFieldName resolves the canonical identifier. Surrounding whitespace is
// ignored; otherwise matching is exact and case-sensitive.
func ParseFieldName(raw string) (FieldName, bool) {
	name := FieldName(strings.TrimSpace(raw))
	if _, ok := fieldLabels[name]; !ok {
		return "", false
	}
	return name, true
}

// String returns the identifier.
func (f FieldName) String() string {
	return string(f)
}

// Label returns the human-facing label, falling back to the identifier.
func (f FieldName) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// Secret reports whether the value should be masked when prompted or printed.
func (f FieldName) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// Strength is an ordered password quality level. The zero value means no
// strength has been computed.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return ""
	}
}

// FormSnapshot is the aggregate state of one form instance. An empty error
// message means the field is valid (or has not been validated yet).
type FormSnapshot struct {
	Form     string               `json:"form"`
	Fields   []FieldName          `json:"fields"`
	Values   map[FieldName]string `json:"values"`
	Errors   map[FieldName]string `json:"errors,omitempty"`
	Strength Strength             `json:"strength,omitempty"`
}

// Value returns the stored value for field.
func (s FormSnapshot) Value(field FieldName) string {
	return s.Values[field]
}

// Error returns the stored error for field.
func (s FormSnapshot) Error(field FieldName) string {
	return s.Errors[field]
}

// IsValid reports whether every field has a value and no error is present.
func (s FormSnapshot) IsValid() bool {
	if len(s.Fields) == 0 {
		return false
	}
	for _, field := range s.Fields {
		if s.Values[field] == "" {
			return false
		}
		if s.Errors[field] != "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s FormSnapshot) Clone() FormSnapshot {
	out := FormSnapshot{
		Form:     s.Form,
		Fields:   append([]FieldName(nil), s.Fields...),
		Values:   make(map[FieldName]string, len(s.Values)),
		Strength: s.Strength,
	}
	for k, v := range s.Values {
		out.Values[k] = v
	}
	if len(s.Errors) > 0 {
		out.Errors = make(map[FieldName]string, len(s.Errors))
		for k, v := range s.Errors {
			out.Errors[k] = v
		}
	}
	return out
}

// Profile is the registrable part of a sign-up. Struct tags feed the
// struct-level validator in pkg/validation.
type Profile struct {
	FirstName string `json:"firstName" yaml:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" yaml:"lastName" validate:"notblank"`
	Username  string `json:"username" yaml:"username" validate:"required,trimmedmin=3"`
	Email     string `json:"email" yaml:"email" validate:"required,emailshape"`
}

// ProfileFromSnapshot extracts the profile fields, dropping passwords.
func ProfileFromSnapshot(s FormSnapshot) Profile {
	return Profile{
		FirstName: s.Values[FieldFirstName],
		LastName:  s.Values[FieldLastName],
		Username:  s.Values[FieldUsername],
		Email:     s.Values[FieldEmail],
	}
}

// UserRecord is a persisted profile.
type UserRecord struct {
	ID        ulid.ULID `json:"id" yaml:"id"`
	Profile   `yaml:",inline"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}
