// Package model defines the typed values shared by validators, the form state
// controller, and user stores. FieldName enumerates the six sign-up inputs,
// Strength orders password quality levels, and FormSnapshot captures the
// complete state of one form instance (values, errors, strength). Snapshots
// are detached copies: mutating one never changes controller state. Profile
// and UserRecord describe what a registry persists after a successful
// sign-up; passwords are never part of either.
package model
