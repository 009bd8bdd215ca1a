package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

func TestValidatorsRejectEmpty(t *testing.T) {
	cases := map[string]string{
		"firstName":       validation.ValidateFirstName(""),
		"lastName":        validation.ValidateLastName(""),
		"username":        validation.ValidateUsername(""),
		"email":           validation.ValidateEmail(""),
		"password":        validation.ValidatePassword(""),
		"confirmPassword": validation.ValidateConfirmPassword("", ""),
	}
	want := map[string]string{
		"firstName":       validation.MsgFirstNameRequired,
		"lastName":        validation.MsgLastNameRequired,
		"username":        validation.MsgUsernameRequired,
		"email":           validation.MsgEmailRequired,
		"password":        validation.MsgPasswordRequired,
		"confirmPassword": validation.MsgConfirmPasswordRequired,
	}
	if diff := cmp.Diff(want, cases); diff != "" {
		t.Fatalf("required messages mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateNames(t *testing.T) {
	if got := validation.ValidateFirstName("   "); got != validation.MsgFirstNameRequired {
		t.Fatalf("expected whitespace first name to fail, got %q", got)
	}
	if got := validation.ValidateLastName("\t"); got != validation.MsgLastNameRequired {
		t.Fatalf("expected whitespace last name to fail, got %q", got)
	}
	if got := validation.ValidateFirstName(" A "); got != "" {
		t.Fatalf("expected padded name to pass, got %q", got)
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "ab", want: "Username must be at least 3 characters"},
		{value: "abc", want: ""},
		{value: "  ab  ", want: "Username must be at least 3 characters"},
		{value: "   ", want: "Username must be at least 3 characters"},
		{value: "äöü", want: ""},
	}
	for _, tt := range tests {
		if got := validation.ValidateUsername(tt.value); got != tt.want {
			t.Errorf("ValidateUsername(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "a@b.co", want: ""},
		{value: "not-an-email", want: validation.MsgEmailInvalid},
		{value: "a@b", want: validation.MsgEmailInvalid},
		{value: "a @b.co", want: validation.MsgEmailInvalid},
		{value: "first.last@sub.example.org", want: ""},
		{value: "  a@b.co  ", want: ""},
	}
	for _, tt := range tests {
		if got := validation.ValidateEmail(tt.value); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValidatePasswordRuleOrder(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "Pa1!", want: "Password must be at least 8 characters"},
		{value: "PASSW0RD!", want: validation.MsgPasswordLowercase},
		{value: "password", want: validation.MsgPasswordUppercase},
		{value: "Password!", want: validation.MsgPasswordDigit},
		{value: "Passw0rd", want: "Password must contain a special character (!@#$%^&*)"},
		{value: "Passw0rd!", want: ""},
		{value: " Passw0rd! ", want: ""},
	}
	for _, tt := range tests {
		if got := validation.ValidatePassword(tt.value); got != tt.want {
			t.Errorf("ValidatePassword(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	if got := validation.ValidateConfirmPassword("X", "Y"); got != validation.MsgPasswordMismatch {
		t.Fatalf("expected mismatch, got %q", got)
	}
	if got := validation.ValidateConfirmPassword("X", "X"); got != "" {
		t.Fatalf("expected match, got %q", got)
	}
	if got := validation.ValidateConfirmPassword("x", "X"); got != validation.MsgPasswordMismatch {
		t.Fatalf("expected case-sensitive comparison, got %q", got)
	}
	if got := validation.ValidateConfirmPassword("X ", "X"); got != validation.MsgPasswordMismatch {
		t.Fatalf("expected untrimmed comparison, got %q", got)
	}
}

func TestValidatorsAreIdempotent(t *testing.T) {
	inputs := []string{"", " ", "ab", "abc", "a@b.co", "password", "Passw0rd!"}
	funcs := map[string]func(string) string{
		"firstName": validation.ValidateFirstName,
		"lastName":  validation.ValidateLastName,
		"username":  validation.ValidateUsername,
		"email":     validation.ValidateEmail,
		"password":  validation.ValidatePassword,
		"confirm": func(v string) string {
			return validation.ValidateConfirmPassword(v, "Passw0rd!")
		},
	}
	for name, fn := range funcs {
		for _, in := range inputs {
			if first, second := fn(in), fn(in); first != second {
				t.Errorf("%s(%q) not idempotent: %q then %q", name, in, first, second)
			}
		}
	}
}

func TestRuleSetPresets(t *testing.T) {
	standard := validation.StandardRules()
	extended := validation.ExtendedRules()

	if got := standard.Password("Passw0rd?"); !strings.Contains(got, "special character") {
		t.Fatalf("expected standard preset to reject '?', got %q", got)
	}
	if got := extended.Password("Passw0rd?"); got != "" {
		t.Fatalf("expected extended preset to accept '?', got %q", got)
	}

	rules, ok := validation.LookupPreset("EXTENDED")
	if !ok || rules.SpecialCharacters != extended.SpecialCharacters {
		t.Fatalf("expected case-insensitive preset lookup, got %+v (ok=%v)", rules, ok)
	}
	if _, ok := validation.LookupPreset("legacy"); ok {
		t.Fatalf("expected unknown preset to be rejected")
	}
}

func TestRuleSetNormalize(t *testing.T) {
	got := validation.RuleSet{MinPasswordLength: 12}.Normalize()
	want := validation.RuleSet{
		Preset:            validation.PresetStandard,
		MinUsernameLength: 3,
		MinPasswordLength: 12,
		SpecialCharacters: "!@#$%^&*",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalized rules mismatch (-want +got):\n%s", diff)
	}
	if msg := got.Password("Passw0rd!"); msg != "Password must be at least 12 characters" {
		t.Fatalf("expected custom length message, got %q", msg)
	}
}

func TestPasswordCriteria(t *testing.T) {
	got := validation.StandardRules().PasswordCriteria("password")
	want := validation.Criteria{Length: true, Lowercase: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
	}
	if got.Count() != 2 {
		t.Fatalf("expected 2 criteria, got %d", got.Count())
	}
	if n := validation.StandardRules().PasswordCriteria("Passw0rd!").Count(); n != 5 {
		t.Fatalf("expected 5 criteria, got %d", n)
	}
}

func TestFieldError(t *testing.T) {
	err := error(validation.NewFieldError(model.FieldUsername, validation.MsgUsernameTaken))
	fieldErr, ok := validation.AsFieldError(err)
	if !ok {
		t.Fatalf("expected field error to unwrap")
	}
	if fieldErr.Field != model.FieldUsername {
		t.Fatalf("unexpected field %q", fieldErr.Field)
	}
	if err.Error() != "username: Username is already taken" {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}
