package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FetchFeed downloads and parses an RSS/Atom feed. Non-2xx responses and
// malformed payloads are returned as errors.
func FetchFeed(ctx context.Context, client *http.Client, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.Client = client
	fp.UserAgent = UserAgent

	feed, err := fp.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return feed, nil
}

// ItemDate returns the item's published (or updated) time, nil when the feed
// had no date or it couldn't be parsed.
func ItemDate(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	if item.Published == "" && item.UpdatedParsed != nil {
		return item.UpdatedParsed
	}
	return nil
}
