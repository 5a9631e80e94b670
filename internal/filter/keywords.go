package filter

import (
	"strings"
)

// Profile is the active keyword set: a title must contain a role, no exclude
// keyword and at least one include keyword.
type Profile struct {
	Roles   []string
	Include []string
	Exclude []string
}

// IsRelevant reports whether a job title matches the profile. All checks are
// case-insensitive substring matches against the lower-cased title; keywords
// are expected in lower case. Location is handed to the policy.
func IsRelevant(title, location string, p Profile, policy LocationPolicy) bool {
	titleLower := strings.ToLower(title)

	if policy != nil && !policy.Allow(location) {
		return false
	}

	//must contain a role
	if !containsAny(titleLower, p.Roles) {
		return false
	}

	//must not contain exclude keywords
	for _, kw := range p.Exclude {
		if kw != "" && strings.Contains(titleLower, kw) {
			return false
		}
	}

	//must contain an include keyword
	return containsAny(titleLower, p.Include)
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}
