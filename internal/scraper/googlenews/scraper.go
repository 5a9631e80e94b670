package googlenews

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/filter"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
)

// sites are the job boards each query is scoped to.
var sites = []string{
	"greenhouse.io",
	"lever.co",
	"workday.com",
	"linkedin.com/jobs",
	"indeed.com",
	"glassdoor.com",
	"monster.com",
	"dice.com",
	"ziprecruiter.com",
	"simplyhired.com",
	"careerbuilder.com",
}

const (
	applicationPrefix = "Job Application for "
	maxQueryKeywords  = 3
	defaultKeyword    = "entry level"
)

type GoogleNewsScraper struct {
	baseURL    string
	region     config.Region
	interQuery time.Duration
	opts       scraper.Options
}

func NewGoogleNewsScraper(baseURL string, region config.Region, interQuery time.Duration, opts scraper.Options) *GoogleNewsScraper {
	return &GoogleNewsScraper{
		baseURL:    baseURL,
		region:     region,
		interQuery: interQuery,
		opts:       opts.Normalize(),
	}
}

func (s *GoogleNewsScraper) Name() string {
	return "GoogleNews (" + s.region.Name + ")"
}

// Queries builds one search per job board, limited to the last day.
func (s *GoogleNewsScraper) Queries() []string {
	keywords := s.opts.Profile.Include
	if len(keywords) == 0 {
		keywords = []string{defaultKeyword}
	}
	if len(keywords) > maxQueryKeywords {
		keywords = keywords[:maxQueryKeywords]
	}
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = `"` + k + `"`
	}
	expQuery := "(" + strings.Join(quoted, " OR ") + ")"

	queries := make([]string, 0, len(sites))
	for _, site := range sites {
		queries = append(queries, fmt.Sprintf("site:%s (software engineer OR developer) %s %s when:1d", site, s.region.Term, expQuery))
	}
	return queries
}

func (s *GoogleNewsScraper) queryURL(q string) string {
	params := url.Values{}
	params.Set("q", q)
	params.Set("hl", "en-US")
	params.Set("gl", s.region.GL)
	params.Set("ceid", s.region.CEID)
	return s.baseURL + "?" + params.Encode()
}

func (s *GoogleNewsScraper) Scrape(ctx context.Context) ([]scraper.Job, error) {
	log.Printf("📋 Searching Google News (%s)...", s.region.Name)

	var jobs []scraper.Job
	for _, q := range s.Queries() {
		found, err := s.scrapeQuery(ctx, q)
		if err != nil {
			log.Printf("Error fetching Google Jobs (%s): %v", q, err)
		}
		jobs = append(jobs, found...)

		if err := s.opts.Clock.Sleep(ctx, s.interQuery); err != nil {
			return jobs, nil
		}
	}

	log.Printf("✅ Google News (%s): %d matching jobs", s.region.Name, len(jobs))
	return jobs, nil
}

func (s *GoogleNewsScraper) scrapeQuery(ctx context.Context, q string) ([]scraper.Job, error) {
	feed, err := scraper.FetchFeed(ctx, s.opts.Client, s.queryURL(q))
	if err != nil {
		return nil, err
	}

	var jobs []scraper.Job
	for _, item := range feed.Items {
		posted := scraper.ItemDate(item)
		role, company := ParseTitle(item.Title)
		if !s.opts.Keep(role, s.region.Term, posted) {
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
			Location:   s.region.Term,
			Link:       link,
			PostedDate: filter.FormatPosted(posted),
			Source:     "GoogleNews",
		})
	}
	return jobs, nil
}

// ParseTitle splits "Job Application for <Role> at <Company> - <Source>".
// Without " at " the whole cleaned title is the role.
func ParseTitle(raw string) (role, company string) {
	clean := scraper.CleanText(raw)
	clean, _, _ = strings.Cut(clean, " - ")

	role = clean
	company = scraper.PlaceholderCompany

	if strings.Contains(clean, " at ") {
		parts := strings.Split(clean, " at ")
		company = strings.TrimSpace(parts[len(parts)-1])
		role = strings.TrimSpace(strings.Replace(parts[0], applicationPrefix, "", -1))
	}
	return role, company
}
