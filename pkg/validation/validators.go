package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern accepts something, an @, something, a dot, something. It is
// not anchored.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// EmailPattern exposes the expression used by ValidateEmail.
func EmailPattern() string {
	return emailPattern.String()
}

// ValidateFirstName requires at least one non-space character.
func ValidateFirstName(value string) string {
	if strings.TrimSpace(value) == "" {
		return MsgFirstNameRequired
	}
	return ""
}

// ValidateLastName requires at least one non-space character.
func ValidateLastName(value string) string {
	if strings.TrimSpace(value) == "" {
		return MsgLastNameRequired
	}
	return ""
}

// ValidateUsername applies the standard username rules.
func ValidateUsername(value string) string {
	return StandardRules().Username(value)
}

// ValidateEmail checks presence and the loose address shape.
func ValidateEmail(value string) string {
	if value == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(value) {
		return MsgEmailInvalid
	}
	return ""
}

// ValidatePassword applies the standard password rules.
func ValidatePassword(value string) string {
	return StandardRules().Password(value)
}

// ValidateConfirmPassword compares against the current password exactly.
func ValidateConfirmPassword(value, password string) string {
	if value == "" {
		return MsgConfirmPasswordRequired
	}
	if value != password {
		return MsgPasswordMismatch
	}
	return ""
}

// Username checks presence, then the trimmed length.
func (r RuleSet) Username(value string) string {
	r = r.Normalize()
	if value == "" {
		return MsgUsernameRequired
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) < r.MinUsernameLength {
		return msgUsernameTooShort(r.MinUsernameLength)
	}
	return ""
}

// Password checks presence, length, then each character class in order.
// The value is never trimmed.
func (r RuleSet) Password(value string) string {
	r = r.Normalize()
	if value == "" {
		return MsgPasswordRequired
	}
	c := r.PasswordCriteria(value)
	switch {
	case !c.Length:
		return msgPasswordTooShort(r.MinPasswordLength)
	case !c.Lowercase:
		return MsgPasswordLowercase
	case !c.Uppercase:
		return MsgPasswordUppercase
	case !c.Digit:
		return MsgPasswordDigit
	case !c.Special:
		return msgPasswordSpecial(r.SpecialCharacters)
	}
	return ""
}
