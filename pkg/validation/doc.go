// Package validation implements the field-level rules for the sign-up and
// sign-in forms. Every validator is a pure function from a raw value (plus
// the current password for confirmPassword) to a message; the empty string
// means the value is acceptable. Rules run in a fixed order and the first
// failing rule wins, so an empty value always reports "required" before any
// format rule.
//
// Registry maps each FieldName to its Rule. RuleSet captures the tunable
// parts of the password policy; the standard and extended presets differ
// only in the special-character set.
package validation
