package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

func TestValidateProfile_Valid(t *testing.T) {
	issues := validation.ValidateProfile(model.Profile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
	})
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %#v", issues)
	}
	if err := validation.IssuesError(issues); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidateProfile_Issues(t *testing.T) {
	issues := validation.ValidateProfile(model.Profile{
		FirstName: "  ",
		LastName:  "Lovelace",
		Username:  " ab ",
		Email:     "not-an-email",
	})
	want := []validation.Issue{
		{Field: model.FieldFirstName, Message: validation.MsgFirstNameRequired},
		{Field: model.FieldUsername, Message: "Username must be at least 3 characters"},
		{Field: model.FieldEmail, Message: validation.MsgEmailInvalid},
	}
	if diff := cmp.Diff(want, issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	fieldErr, ok := validation.AsFieldError(validation.IssuesError(issues))
	if !ok || fieldErr.Field != model.FieldFirstName {
		t.Fatalf("expected first issue as field error, got %#v", fieldErr)
	}
}

func TestValidateProfile_Required(t *testing.T) {
	issues := validation.ValidateProfile(model.Profile{})
	want := []validation.Issue{
		{Field: model.FieldFirstName, Message: validation.MsgFirstNameRequired},
		{Field: model.FieldLastName, Message: validation.MsgLastNameRequired},
		{Field: model.FieldUsername, Message: validation.MsgUsernameRequired},
		{Field: model.FieldEmail, Message: validation.MsgEmailRequired},
	}
	if diff := cmp.Diff(want, issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}
