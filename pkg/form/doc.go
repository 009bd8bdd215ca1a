// Package form implements the form state controller shared by the sign-up and
// sign-in flows.
//
// A Controller owns the current values, per-field errors, touched flags, and
// password strength of one form instance. Presentation layers call SetValue
// on every input change, Blur when a field loses focus, and Submit when the
// user submits. Errors are computed on blur and on submit, never on change,
// with two exceptions: password strength is recomputed on every change, and a
// confirmPassword field that has already been touched is re-checked whenever
// the password changes so a stale "match" can never survive a password edit.
//
// Submit re-runs every rule. A valid form is handed to the optional Submitter
// (for example a user registry); while that call is in flight the controller
// is pending and rejects further submits and edits. On success registered
// SubmitHandlers receive the accepted snapshot and the form resets.
package form
