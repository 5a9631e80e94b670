package remoteok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shubhamxsingh07/jobFinderBot/internal/filter"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
)

type RemoteOKScraper struct {
	url  string
	opts scraper.Options
}

func NewRemoteOKScraper(url string, opts scraper.Options) *RemoteOKScraper {
	return &RemoteOKScraper{
		url:  url,
		opts: opts.Normalize(),
	}
}

func (s *RemoteOKScraper) Name() string {
	return "RemoteOK"
}

// posting is one element of the API array. The first element is a legal
// notice, not a job.
type posting struct {
	ID       flexID `json:"id"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Location string `json:"location"`
	URL      string `json:"url"`
	Date     string `json:"date"`
}

// flexID accepts both "42" and 42.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("remoteok id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate reads ISO-8601 dates; values without a zone are UTC.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func (s *RemoteOKScraper) Scrape(ctx context.Context) ([]scraper.Job, error) {
	log.Println("📋 Fetching RemoteOK...")

	items, err := s.fetch(ctx)
	if err != nil {
		log.Printf("Error fetching RemoteOK: %v", err)
		return nil, nil
	}
	if len(items) < 2 {
		return nil, nil
	}

	var jobs []scraper.Job
	for _, raw := range items[1:] {
		var p posting
		if err := json.Unmarshal(raw, &p); err != nil {
			log.Printf("⚠️ Skipping malformed RemoteOK item: %v", err)
			continue
		}

		posted := parseDate(p.Date)
		title := scraper.CleanText(p.Position)
		location := scraper.CleanText(p.Location)
		if !s.opts.Keep(title, location, posted) {
			continue
		}

		id := string(p.ID)
		if id == "" {
			id = p.URL
		}
		if id == "" {
			continue
		}

		jobs = append(jobs, scraper.Job{
			ID:         id,
			Role:       title,
			Company:    scraper.CleanText(p.Company),
			Location:   location,
			Link:       p.URL,
			PostedDate: filter.FormatPosted(posted),
			Source:     s.Name(),
		})
	}

	log.Printf("✅ RemoteOK: %d matching jobs", len(jobs))
	return jobs, nil
}

func (s *RemoteOKScraper) fetch(ctx context.Context) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", scraper.UserAgent)

	resp, err := s.opts.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remoteok status %d", resp.StatusCode)
	}

	var items []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("remoteok decode: %w", err)
	}
	return items, nil
}
