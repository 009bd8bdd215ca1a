package validation

import (
	"strings"
	"sync"

	"github.com/goliatone/go-authform/pkg/model"
)

// Values exposes field values to rules that compare against peers.
// model.FormSnapshot satisfies it.
type Values interface {
	Value(field model.FieldName) string
}

// ValueMap is a plain map implementation of Values.
type ValueMap map[model.FieldName]string

// Value returns the stored value for field.
func (m ValueMap) Value(field model.FieldName) string {
	return m[field]
}

// Rule validates value; peers gives access to the rest of the form.
type Rule func(value string, peers Values) string

// Registry maps field names to rules. Registering a field twice replaces
// the earlier rule. An empty registry validates nothing.
type Registry struct {
	mu    sync.RWMutex
	rules map[model.FieldName]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[model.FieldName]Rule)}
}

// SignUpRegistry wires the six sign-up validators using rules for the
// username and password policy.
func SignUpRegistry(rules RuleSet) *Registry {
	rules = rules.Normalize()
	reg := NewRegistry()
	reg.Register(model.FieldFirstName, func(value string, _ Values) string {
		return ValidateFirstName(value)
	})
	reg.Register(model.FieldLastName, func(value string, _ Values) string {
		return ValidateLastName(value)
	})
	reg.Register(model.FieldUsername, func(value string, _ Values) string {
		return rules.Username(value)
	})
	reg.Register(model.FieldEmail, func(value string, _ Values) string {
		return ValidateEmail(value)
	})
	reg.Register(model.FieldPassword, func(value string, _ Values) string {
		return rules.Password(value)
	})
	reg.Register(model.FieldConfirmPassword, func(value string, peers Values) string {
		return ValidateConfirmPassword(value, peers.Value(model.FieldPassword))
	})
	return reg
}

// SignInRegistry only requires both credentials to be present; sign-in
// never applies the sign-up format rules to existing accounts.
func SignInRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(model.FieldUsername, Required(MsgUsernameRequired))
	reg.Register(model.FieldPassword, Required(MsgPasswordRequired))
	return reg
}

// Required returns a rule that fails with message on empty input.
func Required(message string) Rule {
	return func(value string, _ Values) string {
		if value == "" {
			return message
		}
		return ""
	}
}

// Register adds or replaces the rule for field. Empty names and nil rules
// are ignored.
func (r *Registry) Register(field model.FieldName, rule Rule) {
	if r == nil || rule == nil {
		return
	}
	if strings.TrimSpace(field.String()) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rules == nil {
		r.rules = make(map[model.FieldName]Rule)
	}
	r.rules[field] = rule
}

// Has reports whether field has a rule.
func (r *Registry) Has(field model.FieldName) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[field]
	return ok
}

// Validate runs the rule for field against its current value in peers.
func (r *Registry) Validate(field model.FieldName, peers Values) (string, error) {
	if r == nil {
		return "", ErrUnknownField
	}
	r.mu.RLock()
	rule, ok := r.rules[field]
	r.mu.RUnlock()
	if !ok {
		return "", ErrUnknownField
	}
	if peers == nil {
		peers = ValueMap(nil)
	}
	return rule(peers.Value(field), peers), nil
}

// ValidateAll runs the rules for fields in order and returns the failures
// keyed by field. Fields without rules are skipped.
func (r *Registry) ValidateAll(fields []model.FieldName, peers Values) map[model.FieldName]string {
	out := make(map[model.FieldName]string)
	for _, field := range fields {
		msg, err := r.Validate(field, peers)
		if err != nil || msg == "" {
			continue
		}
		out[field] = msg
	}
	return out
}
