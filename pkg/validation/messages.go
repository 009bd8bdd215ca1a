package validation

import "fmt"

// Messages shared by validators, the strength scorer, and submitters.
const (
	MsgFirstNameRequired       = "First name is required"
	MsgLastNameRequired        = "Last name is required"
	MsgUsernameRequired        = "Username is required"
	MsgEmailRequired           = "Email is required"
	MsgEmailInvalid            = "Please enter a valid email address"
	MsgPasswordRequired        = "Password is required"
	MsgPasswordLowercase       = "Password must contain a lowercase letter"
	MsgPasswordUppercase       = "Password must contain an uppercase letter"
	MsgPasswordDigit           = "Password must contain a number"
	MsgConfirmPasswordRequired = "Please confirm your password"
	MsgPasswordMismatch        = "Passwords do not match"
	MsgUsernameTaken           = "Username is already taken"
	MsgUserNotFound            = "User not found. Register first."
)

func msgUsernameTooShort(min int) string {
	return fmt.Sprintf("Username must be at least %d characters", min)
}

func msgPasswordTooShort(min int) string {
	return fmt.Sprintf("Password must be at least %d characters", min)
}

func msgPasswordSpecial(set string) string {
	return fmt.Sprintf("Password must contain a special character (%s)", set)
}
