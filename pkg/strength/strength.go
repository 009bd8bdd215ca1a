package strength

import (
	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

const (
	weakCeiling   = 2
	mediumCeiling = 4
)

// Report is the detailed result of Evaluate.
type Report struct {
	Level       model.Strength      `json:"level"`
	Message     string              `json:"message,omitempty"`
	Criteria    validation.Criteria `json:"criteria"`
	Met         int                 `json:"met"`
	EntropyBits float64             `json:"entropyBits"`
}

// Score returns the password validator message and the strength level.
func Score(value string, rules validation.RuleSet) (string, model.Strength) {
	msg := rules.Password(value)
	if value == "" {
		return msg, model.StrengthNone
	}
	return msg, Level(rules.PasswordCriteria(value).Count())
}

// Evaluate is Score plus the criteria breakdown and an entropy estimate.
func Evaluate(value string, rules validation.RuleSet) Report {
	msg, level := Score(value, rules)
	criteria := rules.PasswordCriteria(value)
	report := Report{
		Level:    level,
		Message:  msg,
		Criteria: criteria,
		Met:      criteria.Count(),
	}
	if value != "" {
		report.EntropyBits = passwordvalidator.GetEntropy(value)
	}
	return report
}

// Level maps a count of met criteria onto a strength level.
func Level(met int) model.Strength {
	switch {
	case met <= weakCeiling:
		return model.StrengthWeak
	case met <= mediumCeiling:
		return model.StrengthMedium
	default:
		return model.StrengthStrong
	}
}
