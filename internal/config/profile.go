package config

import (
	"github.com/shubhamxsingh07/jobFinderBot/internal/filter"
)

// Level is the experience level chosen by the user at startup.
type Level string

const (
	Fresher     Level = "fresher"
	Experienced Level = "experienced"
)

var (
	fresherKeywords     = []string{"fresher", "entry level", "junior", "0-1 year", "intern", "graduate", "trainee"}
	experiencedKeywords = []string{"senior", "lead", "manager", "principal", "3+ years", "5+ years", "experienced"}
	// experienced searches drop "0-1 year" and "graduate" from the excludes
	notExperiencedKeywords = []string{"fresher", "entry level", "junior", "intern", "trainee"}
)

// Title is the capitalized level name.
func (l Level) Title() string {
	if l == Experienced {
		return "Experienced"
	}
	return "Fresher"
}

// Label tags alert messages, e.g. "Fresher Job".
func (l Level) Label() string {
	return l.Title() + " Job"
}

// ApplyLevel overwrites the include/exclude keywords for the chosen level and
// returns the resulting profile.
func (c *Config) ApplyLevel(l Level) filter.Profile {
	if l == Experienced {
		c.KeywordsInclude = clone(experiencedKeywords)
		c.KeywordsExclude = clone(notExperiencedKeywords)
	} else {
		c.KeywordsInclude = clone(fresherKeywords)
		c.KeywordsExclude = clone(experiencedKeywords)
	}
	return c.Profile()
}

// Profile is the current keyword profile.
func (c *Config) Profile() filter.Profile {
	return filter.Profile{
		Roles:   clone(c.Roles),
		Include: clone(c.KeywordsInclude),
		Exclude: clone(c.KeywordsExclude),
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
