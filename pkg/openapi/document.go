package openapi

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

// Version is the OpenAPI version emitted by Document.
const Version = "3.0.3"

// Paths and operation IDs used by Document.
const (
	UsersPath        = "/users"
	SessionsPath     = "/sessions"
	RegisterUserOpID = "registerUser"
	SignInOpID       = "signIn"
)

// Document builds the contract for rules.
func Document(rules validation.RuleSet) *openapi3.T {
	rules = rules.Normalize()

	register := openapi3.NewOperation()
	register.OperationID = RegisterUserOpID
	register.Summary = "Register a user"
	register.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchema(SignUpSchema(rules)),
	}
	register.Responses = openapi3.NewResponses(
		openapi3.WithStatus(201, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("User registered").
			WithJSONSchema(UserSchema())}),
		openapi3.WithStatus(409, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription(validation.MsgUsernameTaken).
			WithJSONSchema(FieldErrorSchema())}),
		openapi3.WithStatus(422, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Validation failed").
			WithJSONSchema(FieldErrorSchema())}),
	)

	signIn := openapi3.NewOperation()
	signIn.OperationID = SignInOpID
	signIn.Summary = "Sign in"
	signIn.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchema(SignInSchema()),
	}
	signIn.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Signed in").
			WithJSONSchema(UserSchema())}),
		openapi3.WithStatus(404, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription(validation.MsgUserNotFound).
			WithJSONSchema(FieldErrorSchema())}),
	)

	return &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       "authform",
			Version:     "1.0.0",
			Description: "Registration and sign-in payloads (" + rules.Preset + " password rules).",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(UsersPath, &openapi3.PathItem{Post: register}),
			openapi3.WithPath(SessionsPath, &openapi3.PathItem{Post: signIn}),
		),
	}
}

// SignUpSchema describes the sign-up request body.
func SignUpSchema(rules validation.RuleSet) *openapi3.Schema {
	rules = rules.Normalize()

	password := openapi3.NewAllOfSchema(
		openapi3.NewStringSchema().WithPattern(`[a-z]`),
		openapi3.NewStringSchema().WithPattern(`[A-Z]`),
		openapi3.NewStringSchema().WithPattern(`[0-9]`),
		openapi3.NewStringSchema().WithPattern(specialClass(rules.SpecialCharacters)),
	)
	password.Type = &openapi3.Types{openapi3.TypeString}
	password.MinLength = uint64(rules.MinPasswordLength)
	password.Description = "At least " + strconv.Itoa(rules.MinPasswordLength) + " characters with a lowercase letter, an uppercase letter, a number and one of " + rules.SpecialCharacters

	schema := openapi3.NewObjectSchema().
		WithProperty(model.FieldFirstName.String(), nonBlank()).
		WithProperty(model.FieldLastName.String(), nonBlank()).
		WithProperty(model.FieldUsername.String(), openapi3.NewStringSchema().WithMinLength(int64(rules.MinUsernameLength))).
		WithProperty(model.FieldEmail.String(), openapi3.NewStringSchema().WithPattern(validation.EmailPattern())).
		WithProperty(model.FieldPassword.String(), password).
		WithProperty(model.FieldConfirmPassword.String(), openapi3.NewStringSchema().WithMinLength(1))
	schema.Required = fieldNames(model.SignUpFields)
	return schema
}

// SignInSchema describes the sign-in request body.
func SignInSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty(model.FieldUsername.String(), openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty(model.FieldPassword.String(), openapi3.NewStringSchema().WithMinLength(1))
	schema.Required = fieldNames(model.SignInFields)
	return schema
}

// UserSchema describes a stored user.
func UserSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema().WithMinLength(26).WithMaxLength(26)).
		WithProperty(model.FieldFirstName.String(), openapi3.NewStringSchema()).
		WithProperty(model.FieldLastName.String(), openapi3.NewStringSchema()).
		WithProperty(model.FieldUsername.String(), openapi3.NewStringSchema()).
		WithProperty(model.FieldEmail.String(), openapi3.NewStringSchema()).
		WithProperty("createdAt", openapi3.NewDateTimeSchema())
	schema.Required = []string{"id", "username", "createdAt"}
	return schema
}

// FieldErrorSchema describes an error routed to a single field.
func FieldErrorSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("field", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema())
	schema.Required = []string{"message"}
	return schema
}

func nonBlank() *openapi3.Schema {
	return openapi3.NewStringSchema().WithMinLength(1).WithPattern(`\S`)
}

func specialClass(set string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range set {
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteByte(']')
	return b.String()
}

func fieldNames(fields []model.FieldName) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.String())
	}
	return out
}
