package ruddertyper

// ContextKey is the custom-context key the generator metadata is sent under.
const ContextKey = "ruddertyper"

// GeneratorContext identifies the generator and tracking plan a client was
// built from. It is attached to every outgoing call for attribution.
//
// A GeneratorContext is a plain value: construct it once, pass it to the
// client, and share it freely between goroutines.
type GeneratorContext struct {
	SDK                 string `json:"sdk" yaml:"sdk"`
	Language            string `json:"language" yaml:"language"`
	RudderTyperVersion  string `json:"rudderTyperVersion" yaml:"rudderTyperVersion"`
	TrackingPlanID      string `json:"trackingPlanId" yaml:"trackingPlanId"`
	TrackingPlanVersion string `json:"trackingPlanVersion" yaml:"trackingPlanVersion"`
}

const (
	DefaultSDK      = "analytics-go"
	DefaultLanguage = "go"
)

func NewGeneratorContext(rudderTyperVersion, trackingPlanID, trackingPlanVersion string) GeneratorContext {
	return GeneratorContext{
		SDK:                 DefaultSDK,
		Language:            DefaultLanguage,
		RudderTyperVersion:  rudderTyperVersion,
		TrackingPlanID:      trackingPlanID,
		TrackingPlanVersion: trackingPlanVersion,
	}
}

// Map returns a new map holding the context fields. Callers may modify the
// result without affecting g.
func (g GeneratorContext) Map() map[string]interface{} {
	return map[string]interface{}{
		"sdk":                 g.SDK,
		"language":            g.Language,
		"rudderTyperVersion":  g.RudderTyperVersion,
		"trackingPlanId":      g.TrackingPlanID,
		"trackingPlanVersion": g.TrackingPlanVersion,
	}
}

// AttachContext puts the generator metadata on options under ContextKey,
// replacing whatever was there, and returns options. A nil options yields
// a fresh *MessageOptions.
func (g GeneratorContext) AttachContext(options ContextOptions) ContextOptions {
	if options == nil || isNilPointer(options) {
		options = NewMessageOptions()
	}
	options.PutCustomContext(ContextKey, g.Map())
	return options
}
