package ruddertyper

import (
	"strings"

	"github.com/ua-parser/uap-go/uaparser"
)

// uaParser resolves a context userAgent to os and browser entries.
type uaParser struct {
	loader *lazyLoader[*uaparser.Parser]
}

func newUAParser(options UAParserOptions) *uaParser {
	return &uaParser{
		loader: newLazyLoader(loaderOptions(options), uaparser.NewFromSaved),
	}
}

func (u *uaParser) parse(ua string) *uaparser.Client {
	if ua == "" {
		return nil
	}
	parser, ok := u.loader.get()
	if !ok {
		return nil
	}
	return parser.Parse(ua)
}

// osContext and browserContext render parsed agents the way the context
// fields are sent.
func osContext(os *uaparser.Os) map[string]interface{} {
	return map[string]interface{}{
		"name":    os.Family,
		"version": joinVersion(os.Major, os.Minor, os.Patch, os.PatchMinor),
	}
}

func browserContext(agent *uaparser.UserAgent) map[string]interface{} {
	return map[string]interface{}{
		"name":    agent.Family,
		"version": joinVersion(agent.Major, agent.Minor, agent.Patch),
	}
}

func joinVersion(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}
