// Package store defines the UserStore contract used by the auth service and
// ships an in-memory implementation. Durable backends live in the sqlite and
// filestore subpackages.
//
// Usernames are unique and matched exactly (case-sensitive). Insert on a
// taken username fails with an error satisfying errors.Is(err, ErrConflict).
package store
