// Package auth registers and looks up users on top of a store.UserStore and
// adapts that service to form.Submitter so the sign-up and sign-in
// controllers can hand accepted snapshots straight to it.
//
// There is no credential check: Login only confirms the username exists.
package auth
