package config

const (
	RegionIndia = "India"
	RegionUSA   = "USA"
)

// Region scopes the aggregator search: Term goes into the query, GL and CEID
// into the feed parameters.
type Region struct {
	Name string
	Term string
	GL   string
	CEID string
}

var regions = map[string]Region{
	RegionIndia: {Name: RegionIndia, Term: "India", GL: "IN", CEID: "IN:en"},
	RegionUSA:   {Name: RegionUSA, Term: "USA", GL: "US", CEID: "US:en"},
}

// LookupRegion returns the named region, defaulting to USA.
func LookupRegion(name string) Region {
	if r, ok := regions[name]; ok {
		return r
	}
	return regions[RegionUSA]
}
