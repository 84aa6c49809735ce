package ruddertyper

// contextEnricher fills derived context fields from the raw ip and
// userAgent entries of a message context. Fields already present are
// never overwritten.
type contextEnricher struct {
	countryLookup *countryLookup
	uaParser      *uaParser
}

func newContextEnricher(options *Options) *contextEnricher {
	return &contextEnricher{
		countryLookup: newCountryLookup(options.IPCountryOptions),
		uaParser:      newUAParser(options.UAParserOptions),
	}
}

func (e *contextEnricher) enrich(context map[string]interface{}) {
	if ip, ok := context["ip"].(string); ok {
		if _, exists := context["location"]; !exists {
			if country, found := e.countryLookup.country(ip); found {
				context["location"] = map[string]interface{}{"country": country}
			}
		}
	}

	ua, ok := context["userAgent"].(string)
	if !ok {
		return
	}
	client := e.uaParser.parse(ua)
	if client == nil {
		return
	}
	if _, exists := context["os"]; !exists && client.Os != nil {
		context["os"] = osContext(client.Os)
	}
	if _, exists := context["browser"]; !exists && client.UserAgent != nil {
		context["browser"] = browserContext(client.UserAgent)
	}
}
