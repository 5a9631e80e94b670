// Define an interface for all sources
// Ensure consistency

package scraper

import (
	"context"
	"net/http"
	"time"

	"github.com/shubhamxsingh07/jobFinderBot/internal/clock"
	"github.com/shubhamxsingh07/jobFinderBot/internal/filter"
)

const (
	// UserAgent is sent to sources that reject default Go clients.
	UserAgent = "Mozilla/5.0"
	// FetchTimeout bounds every source request.
	FetchTimeout = 10 * time.Second

	PlaceholderCompany = "Career Page"
	UnknownCompany     = "See Link"
	RemoteLocation     = "Remote"
)

// Job is one normalized posting. ID is the only dedup key.
type Job struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Link       string `json:"link"`
	PostedDate string `json:"posted_date"`
	Source     string `json:"source"`
}

// Scraper defines the interface that all sources must implement
type Scraper interface {
	// Scrape returns the matching jobs. Transport failures are logged and
	// yield a partial or empty slice, never an error for the whole source.
	Scrape(ctx context.Context) ([]Job, error)

	// Name is the source name (RemoteOK, WeWorkRemotely, ...)
	Name() string
}

// Options are shared by every source.
type Options struct {
	Client   *http.Client
	Clock    clock.Clock
	Profile  filter.Profile
	Location filter.LocationPolicy
}

// NewHTTPClient returns a client with the default fetch timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: FetchTimeout}
}

// Normalize fills nil fields with defaults.
func (o Options) Normalize() Options {
	if o.Client == nil {
		o.Client = NewHTTPClient()
	}
	if o.Clock == nil {
		o.Clock = clock.Real{}
	}
	if o.Location == nil {
		o.Location = filter.AnyLocation{}
	}
	return o
}

// Keep applies the recency and relevance filters. Recency only applies when
// the source reported a parseable date.
func (o Options) Keep(role, location string, posted *time.Time) bool {
	if posted != nil && !filter.IsRecent(posted, o.Clock.Now()) {
		return false
	}
	return filter.IsRelevant(role, location, o.Profile, o.Location)
}
