package auth

import "errors"

// Error codes attached to service failures.
const (
	CodeInvalidProfile = "PROFILE_INVALID"
	CodeInsertFailed   = "USER_INSERT_FAILED"
	CodeNotFound       = "USER_NOT_FOUND"
	CodeLookupFailed   = "USER_LOOKUP_FAILED"
)

var (
	// ErrUserNotFound is returned by Login for unknown usernames.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrNilStore is returned when the service has no store.
	ErrNilStore = errors.New("auth: nil user store")
)
