package wwr

import (
	"context"
	"log"
	"strings"

	"github.com/shubhamxsingh07/jobFinderBot/internal/filter"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
)

type WWRScraper struct {
	url  string
	opts scraper.Options
}

func NewWWRScraper(url string, opts scraper.Options) *WWRScraper {
	return &WWRScraper{
		url:  url,
		opts: opts.Normalize(),
	}
}

func (s *WWRScraper) Name() string {
	return "WeWorkRemotely"
}

func (s *WWRScraper) Scrape(ctx context.Context) ([]scraper.Job, error) {
	log.Println("📋 Fetching WeWorkRemotely...")

	feed, err := scraper.FetchFeed(ctx, s.opts.Client, s.url)
	if err != nil {
		log.Printf("Error fetching WWR: %v", err)
		return nil, nil
	}

	var jobs []scraper.Job
	for _, item := range feed.Items {
		posted := scraper.ItemDate(item)
		company, role := ParseTitle(item.Title)
		if !s.opts.Keep(role, scraper.RemoteLocation, posted) {
			continue
		}

		link := strings.TrimSpace(item.Link)
		id := strings.TrimSpace(item.GUID)
		if id == "" {
			id = link
		}
		if id == "" {
			continue
		}

		jobs = append(jobs, scraper.Job{
			ID:         id,
			Role:       role,
			Company:    company,
			Location:   scraper.RemoteLocation,
			Link:       link,
			PostedDate: filter.FormatPosted(posted),
			Source:     s.Name(),
		})
	}

	log.Printf("✅ WeWorkRemotely: %d matching jobs", len(jobs))
	return jobs, nil
}

// ParseTitle splits "Company: Role". Without the separator the whole title is
// the role and the company is unknown.
func ParseTitle(raw string) (company, role string) {
	clean := scraper.CleanText(raw)
	if !strings.Contains(clean, ": ") {
		return scraper.UnknownCompany, clean
	}
	parts := strings.Split(clean, ": ")
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
