package filter

import "strings"

// LocationPolicy decides whether a posting's location is acceptable.
type LocationPolicy interface {
	Allow(location string) bool
}

// usaLocations is matched by substring against the lower-cased location.
var usaLocations = []string{
	"usa", "united states", "us", "remote", "new york", "san francisco", "austin",
	"seattle", "boston", "los angeles", "chicago", "denver", "washington",
	"california", "texas", "florida",
}

// IsUSALocation reports whether location looks like a US place. An empty
// location is treated as US because some sources never report one.
func IsUSALocation(location string) bool {
	if location == "" {
		return true
	}
	loc := strings.ToLower(location)
	for _, city := range usaLocations {
		if strings.Contains(loc, city) {
			return true
		}
	}
	return false
}

// AnyLocation accepts every location. It is the default policy.
type AnyLocation struct{}

func (AnyLocation) Allow(string) bool { return true }

// USAOnly accepts remote postings and postings whose location passes
// IsUSALocation.
type USAOnly struct{}

func (USAOnly) Allow(location string) bool {
	if location == "" || location == "Remote" {
		return true
	}
	if strings.Contains(strings.ToLower(location), "remote") {
		return true
	}
	return IsUSALocation(location)
}

// PolicyFor returns USAOnly when enforce is set, AnyLocation otherwise.
func PolicyFor(enforce bool) LocationPolicy {
	if enforce {
		return USAOnly{}
	}
	return AnyLocation{}
}
