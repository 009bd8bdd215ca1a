// Package openapi publishes the sign-up and sign-in payloads as an OpenAPI 3
// document built with kin-openapi, and validates decoded payloads against
// the same schemas.
//
// The schemas carry what JSON Schema can express (required keys, lengths,
// character-class patterns). Trimmed lengths and the confirmPassword match
// are not expressible, so ValidateSignUp runs the field validators for those
// after the schema passes.
package openapi
