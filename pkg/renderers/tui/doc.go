// Package tui drives a form.Controller from a terminal. Each field is
// prompted, stored and blurred in order; a field that fails validation is
// prompted again with its message shown. Once every field passes the form is
// submitted, and fields that come back with errors (a mismatched
// confirmation, a taken username) are prompted again.
//
// Prompts go through a PromptDriver so tests can script answers without a
// terminal. The default driver uses survey.
package tui
