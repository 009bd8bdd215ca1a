package store

import (
	"context"
	"errors"

	"github.com/samber/oops"

	"github.com/goliatone/go-authform/pkg/model"
)

// Error codes attached to store failures.
const (
	CodeConflict    = "USER_CONFLICT"
	CodeInvalidUser = "USER_INVALID"
	CodeBackend     = "STORE_BACKEND"
)

var (
	// ErrConflict is returned when a username is already registered.
	ErrConflict = errors.New("store: username already registered")
	// ErrInvalidUser is returned for records missing an ID or username.
	ErrInvalidUser = errors.New("store: invalid user record")
)

// UserStore persists registered users.
type UserStore interface {
	// Find looks up a user by exact username.
	Find(ctx context.Context, username string) (model.UserRecord, bool, error)
	// Insert adds a new user. Duplicate usernames fail with ErrConflict.
	Insert(ctx context.Context, user model.UserRecord) error
	// List returns users in insertion order.
	List(ctx context.Context) ([]model.UserRecord, error)
}

// ConflictError wraps ErrConflict with the offending username.
func ConflictError(username string) error {
	return oops.Code(CodeConflict).With("username", username).Wrap(ErrConflict)
}

// CheckInsertable validates the fields every backend requires.
func CheckInsertable(user model.UserRecord) error {
	if user.Username == "" {
		return oops.Code(CodeInvalidUser).Wrapf(ErrInvalidUser, "empty username")
	}
	if user.ID.IsZero() {
		return oops.Code(CodeInvalidUser).With("username", user.Username).Wrapf(ErrInvalidUser, "missing id")
	}
	return nil
}

// IsConflict reports whether err is a username conflict.
func IsConflict(err error) bool {
	if errors.Is(err, ErrConflict) {
		return true
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	return oopsErr.Code() == CodeConflict
}
