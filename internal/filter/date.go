package filter

import (
	"time"
)

// RecencyWindow is the trailing window a posting must fall in.
const RecencyWindow = 24 * time.Hour

// NotAvailable is the posted-date placeholder for a missing or unparsable date.
const NotAvailable = "N/A"

// PostedLayout formats posted dates in notifications.
const PostedLayout = "2006-01-02 15:04"

// IsRecent reports whether t lies no more than RecencyWindow before now.
// A nil timestamp is never recent. Times without a zone are parsed by the
// adapters as UTC, so the comparison is between absolute instants.
func IsRecent(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	return now.UTC().Sub(t.UTC()) <= RecencyWindow
}

// FormatPosted renders t in its own zone, or NotAvailable when t is nil.
func FormatPosted(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}
	return t.Format(PostedLayout)
}
