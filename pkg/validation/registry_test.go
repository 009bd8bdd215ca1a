package validation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

func TestSignUpRegistryValidateAll(t *testing.T) {
	reg := validation.SignUpRegistry(validation.StandardRules())
	values := validation.ValueMap{
		model.FieldFirstName:       "Ada",
		model.FieldLastName:        " ",
		model.FieldUsername:        "ad",
		model.FieldEmail:           "ada@example.com",
		model.FieldPassword:        "Passw0rd!",
		model.FieldConfirmPassword: "Passw0rd?",
	}

	got := reg.ValidateAll(model.SignUpFields, values)
	want := map[model.FieldName]string{
		model.FieldLastName:        validation.MsgLastNameRequired,
		model.FieldUsername:        "Username must be at least 3 characters",
		model.FieldConfirmPassword: validation.MsgPasswordMismatch,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryConfirmReadsCurrentPassword(t *testing.T) {
	reg := validation.SignUpRegistry(validation.StandardRules())
	values := validation.ValueMap{
		model.FieldPassword:        "Passw0rd!",
		model.FieldConfirmPassword: "Passw0rd!",
	}
	msg, err := reg.Validate(model.FieldConfirmPassword, values)
	if err != nil || msg != "" {
		t.Fatalf("expected match, got %q (err=%v)", msg, err)
	}

	values[model.FieldPassword] = "Other0ne!"
	msg, _ = reg.Validate(model.FieldConfirmPassword, values)
	if msg != validation.MsgPasswordMismatch {
		t.Fatalf("expected mismatch after password change, got %q", msg)
	}
}

func TestRegistryUnknownField(t *testing.T) {
	reg := validation.SignInRegistry()
	if reg.Has(model.FieldEmail) {
		t.Fatalf("sign-in registry should not validate email")
	}
	if _, err := reg.Validate(model.FieldEmail, validation.ValueMap{}); !errors.Is(err, validation.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	var nilReg *validation.Registry
	if _, err := nilReg.Validate(model.FieldUsername, nil); !errors.Is(err, validation.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField from nil registry, got %v", err)
	}
}

func TestSignInRegistryRequiresOnly(t *testing.T) {
	reg := validation.SignInRegistry()
	got := reg.ValidateAll(model.SignInFields, validation.ValueMap{
		model.FieldUsername: "a",
		model.FieldPassword: "",
	})
	want := map[model.FieldName]string{
		model.FieldPassword: validation.MsgPasswordRequired,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	reg := validation.NewRegistry()
	reg.Register(model.FieldUsername, validation.Required("first"))
	reg.Register(model.FieldUsername, validation.Required("second"))
	reg.Register("", validation.Required("ignored"))
	reg.Register(model.FieldEmail, nil)

	msg, err := reg.Validate(model.FieldUsername, validation.ValueMap{})
	if err != nil || msg != "second" {
		t.Fatalf("expected latest rule to win, got %q (err=%v)", msg, err)
	}
	if reg.Has(model.FieldEmail) {
		t.Fatalf("expected nil rule to be ignored")
	}
}

func TestSnapshotSatisfiesValues(t *testing.T) {
	reg := validation.SignUpRegistry(validation.StandardRules())
	snap := model.FormSnapshot{Values: map[model.FieldName]string{model.FieldEmail: "a@b.co"}}
	msg, err := reg.Validate(model.FieldEmail, snap)
	if err != nil || msg != "" {
		t.Fatalf("expected snapshot values to validate, got %q (err=%v)", msg, err)
	}
}
