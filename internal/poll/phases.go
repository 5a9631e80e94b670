package poll

import (
	"slices"

	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper/googlenews"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper/remoteok"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper/wwr"
)

// BuildPhases wires the sources: India first, then the international sources
// (RemoteOK, WeWorkRemotely, USA search).
func BuildPhases(cfg *config.Config, opts scraper.Options) []Phase {
	var phases []Phase
	news := func(region string) scraper.Scraper {
		return googlenews.NewGoogleNewsScraper(cfg.Endpoints.GoogleNews, config.LookupRegion(region), cfg.Delays.InterQuery, opts)
	}

	if slices.Contains(cfg.Regions, config.RegionIndia) {
		phases = append(phases, Phase{Name: "India", Sources: []scraper.Scraper{news(config.RegionIndia)}})
	}

	intl := []scraper.Scraper{
		remoteok.NewRemoteOKScraper(cfg.Endpoints.RemoteOK, opts),
		wwr.NewWWRScraper(cfg.Endpoints.WWR, opts),
	}
	if slices.Contains(cfg.Regions, config.RegionUSA) {
		intl = append(intl, news(config.RegionUSA))
	}
	phases = append(phases, Phase{Name: "International", Sources: intl})
	return phases
}
