package form

import (
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

// Form identifiers used for logging and metrics labels.
const (
	FormSignUp = "signup"
	FormSignIn = "signin"
)

// Definition describes which fields a form holds and how they validate.
type Definition struct {
	Name          string
	Fields        []model.FieldName
	Rules         *validation.Registry
	PasswordRules validation.RuleSet
	// TrackStrength enables live password strength on the password field.
	TrackStrength bool
}

// SignUp returns the six-field registration form.
func SignUp(rules validation.RuleSet) Definition {
	rules = rules.Normalize()
	return Definition{
		Name:          FormSignUp,
		Fields:        append([]model.FieldName(nil), model.SignUpFields...),
		Rules:         validation.SignUpRegistry(rules),
		PasswordRules: rules,
		TrackStrength: true,
	}
}

// SignIn returns the username/password form.
func SignIn() Definition {
	return Definition{
		Name:          FormSignIn,
		Fields:        append([]model.FieldName(nil), model.SignInFields...),
		Rules:         validation.SignInRegistry(),
		PasswordRules: validation.StandardRules(),
	}
}

func (d Definition) has(field model.FieldName) bool {
	for _, f := range d.Fields {
		if f == field {
			return true
		}
	}
	return false
}
