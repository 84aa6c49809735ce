package ruddertyper

import (
	"github.com/statsig-io/ip3country-go/pkg/countrylookup"
)

// countryLookup resolves a context ip to an ISO country code.
type countryLookup struct {
	loader *lazyLoader[*countrylookup.CountryLookup]
}

func newCountryLookup(options IPCountryOptions) *countryLookup {
	return &countryLookup{
		loader: newLazyLoader(loaderOptions(options), countrylookup.New),
	}
}

func (c *countryLookup) country(ip string) (string, bool) {
	if ip == "" {
		return "", false
	}
	lookup, ok := c.loader.get()
	if !ok {
		return "", false
	}
	return lookup.LookupIp(ip)
}
