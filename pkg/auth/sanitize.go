package auth

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-authform/pkg/model"
)

var (
	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy
)

// SanitizeProfile strips markup from the name fields. Username and email are
// returned untouched so lookups stay exact.
func SanitizeProfile(p model.Profile) model.Profile {
	p.FirstName = sanitizeName(p.FirstName)
	p.LastName = sanitizeName(p.LastName)
	return p
}

func sanitizeName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := nameSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func nameSanitizer() *bluemonday.Policy {
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	return namePolicy
}
