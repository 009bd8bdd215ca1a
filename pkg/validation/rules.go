package validation

import (
	"strings"
	"unicode/utf8"
)

// Rule presets.
const (
	PresetStandard = "standard"
	PresetExtended = "extended"
)

const (
	defaultMinUsernameLength = 3
	defaultMinPasswordLength = 8

	standardSpecialCharacters = "!@#$%^&*"
	extendedSpecialCharacters = `!@#$%^&*(),.?":{}|<>`
)

// RuleSet holds the tunable parts of the username and password rules. Zero
// fields fall back to the standard preset.
type RuleSet struct {
	Preset            string `yaml:"preset" json:"preset"`
	MinUsernameLength int    `yaml:"min_username_length" json:"minUsernameLength"`
	MinPasswordLength int    `yaml:"min_password_length" json:"minPasswordLength"`
	SpecialCharacters string `yaml:"special_characters" json:"specialCharacters"`
}

// StandardRules is the default preset.
func StandardRules() RuleSet {
	return RuleSet{
		Preset:            PresetStandard,
		MinUsernameLength: defaultMinUsernameLength,
		MinPasswordLength: defaultMinPasswordLength,
		SpecialCharacters: standardSpecialCharacters,
	}
}

// ExtendedRules accepts a wider punctuation set as the special character.
func ExtendedRules() RuleSet {
	rules := StandardRules()
	rules.Preset = PresetExtended
	rules.SpecialCharacters = extendedSpecialCharacters
	return rules
}

// LookupPreset resolves a preset by name. The empty name maps to standard.
func LookupPreset(name string) (RuleSet, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetStandard:
		return StandardRules(), true
	case PresetExtended:
		return ExtendedRules(), true
	default:
		return RuleSet{}, false
	}
}

// Normalize fills zero fields from the preset named by r.Preset (standard
// when unknown).
func (r RuleSet) Normalize() RuleSet {
	base, ok := LookupPreset(r.Preset)
	if !ok {
		base = StandardRules()
	}
	if r.MinUsernameLength <= 0 {
		r.MinUsernameLength = base.MinUsernameLength
	}
	if r.MinPasswordLength <= 0 {
		r.MinPasswordLength = base.MinPasswordLength
	}
	if r.SpecialCharacters == "" {
		r.SpecialCharacters = base.SpecialCharacters
	}
	if r.Preset == "" {
		r.Preset = base.Preset
	}
	return r
}

// Criteria records which password requirements a value satisfies.
type Criteria struct {
	Length    bool
	Lowercase bool
	Uppercase bool
	Digit     bool
	Special   bool
}

// Count returns how many criteria are met.
func (c Criteria) Count() int {
	n := 0
	for _, ok := range []bool{c.Length, c.Lowercase, c.Uppercase, c.Digit, c.Special} {
		if ok {
			n++
		}
	}
	return n
}

// PasswordCriteria evaluates every password requirement independently.
// Letter and digit classes are ASCII only.
func (r RuleSet) PasswordCriteria(value string) Criteria {
	r = r.Normalize()
	c := Criteria{
		Length:  utf8.RuneCountInString(value) >= r.MinPasswordLength,
		Special: strings.ContainsAny(value, r.SpecialCharacters),
	}
	for _, ch := range value {
		switch {
		case ch >= 'a' && ch <= 'z':
			c.Lowercase = true
		case ch >= 'A' && ch <= 'Z':
			c.Uppercase = true
		case ch >= '0' && ch <= '9':
			c.Digit = true
		}
	}
	return c
}
