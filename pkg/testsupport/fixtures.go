// Package testsupport holds fixtures and the shared UserStore contract used
// by the package tests.
package testsupport

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/goliatone/go-authform/pkg/form"
	"github.com/goliatone/go-authform/pkg/model"
)

// FixedTime is the CreatedAt used by Record.
var FixedTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// SignUpValues returns a sign-up input that passes every rule of both
// presets.
func SignUpValues() map[model.FieldName]string {
	return map[model.FieldName]string{
		model.FieldFirstName:       "Ada",
		model.FieldLastName:        "Lovelace",
		model.FieldUsername:        "ada",
		model.FieldEmail:           "ada@example.com",
		model.FieldPassword:        "Passw0rd!",
		model.FieldConfirmPassword: "Passw0rd!",
	}
}

// SignInValues returns a sign-in input for username.
func SignInValues(username string) map[model.FieldName]string {
	return map[model.FieldName]string{
		model.FieldUsername: username,
		model.FieldPassword: "anything",
	}
}

// Profile returns a valid profile for username.
func Profile(username string) model.Profile {
	return model.Profile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  username,
		Email:     username + "@example.com",
	}
}

// Record returns a storable user for username with a fresh ID.
func Record(username string) model.UserRecord {
	return model.UserRecord{
		ID:        ulid.Make(),
		Profile:   Profile(username),
		CreatedAt: FixedTime,
	}
}

// Fill sets and blurs every controller field in display order. Fields
// missing from values are set to "".
func Fill(t testing.TB, ctrl *form.Controller, values map[model.FieldName]string) {
	t.Helper()
	for _, field := range ctrl.Fields() {
		if err := ctrl.SetValue(field, values[field]); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
		if err := ctrl.Blur(field); err != nil {
			t.Fatalf("blur %s: %v", field, err)
		}
	}
}
