package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
)

var rules = ruleset()

func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for _, w := range []string{"API", "DB", "HTTP", "ID", "JSON", "SQL", "UI", "URL", "UUID"} {
		r.AddAcronym(w)
	}
	return r
}

// Sanitize turns arbitrary user text into a valid type identifier: every
// character outside [A-Za-z0-9_] becomes '_', runs of '_' collapse to one,
// leading/trailing '_' are stripped, and a '_' prefix is added when the
// result is empty or starts with a digit. Sanitize is idempotent.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prevUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

// FileName returns the on-disk file name for a generated type,
// e.g. "UserProfile" -> "user_profile.ts".
func FileName(name string) string {
	return rules.Underscore(Sanitize(name)) + ".ts"
}

// accessor returns the lower-camel identifier used for a type in inverse
// accessor arrows, e.g. "UserProfile" -> "userProfile".
func accessor(name string) string {
	return rules.CamelizeDownFirst(rules.Underscore(Sanitize(name)))
}
