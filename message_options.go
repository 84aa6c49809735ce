package ruddertyper

// ContextOptions is the part of the host SDK's per-call options that the
// generated code writes to.
type ContextOptions interface {
	PutCustomContext(key string, context map[string]interface{})
}

// MessageOptions are per-call options forwarded to the host SDK with a
// message.
type MessageOptions struct {
	CustomContexts map[string]map[string]interface{} `json:"customContexts,omitempty"`
	Integrations   map[string]bool                   `json:"integrations,omitempty"`
	ExternalIDs    []ExternalID                      `json:"externalIds,omitempty"`
}

type ExternalID struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

func NewMessageOptions() *MessageOptions {
	return &MessageOptions{
		CustomContexts: make(map[string]map[string]interface{}),
		Integrations:   make(map[string]bool),
	}
}

// Clone returns a copy of o whose maps and slices can be written without
// affecting o. Custom context values are shared.
func (o *MessageOptions) Clone() *MessageOptions {
	if o == nil {
		return nil
	}
	c := &MessageOptions{
		CustomContexts: make(map[string]map[string]interface{}, len(o.CustomContexts)),
		Integrations:   make(map[string]bool, len(o.Integrations)),
	}
	for k, v := range o.CustomContexts {
		c.CustomContexts[k] = v
	}
	for k, v := range o.Integrations {
		c.Integrations[k] = v
	}
	if o.ExternalIDs != nil {
		c.ExternalIDs = append([]ExternalID(nil), o.ExternalIDs...)
	}
	return c
}

func (o *MessageOptions) PutCustomContext(key string, context map[string]interface{}) {
	if o.CustomContexts == nil {
		o.CustomContexts = make(map[string]map[string]interface{})
	}
	o.CustomContexts[key] = context
}

func (o *MessageOptions) PutIntegration(name string, enabled bool) *MessageOptions {
	if o.Integrations == nil {
		o.Integrations = make(map[string]bool)
	}
	o.Integrations[name] = enabled
	return o
}

func (o *MessageOptions) PutExternalID(idType string, id string) *MessageOptions {
	for i, ext := range o.ExternalIDs {
		if ext.Type == idType {
			o.ExternalIDs[i].ID = id
			return o
		}
	}
	o.ExternalIDs = append(o.ExternalIDs, ExternalID{ID: id, Type: idType})
	return o
}

// Context renders the custom contexts as message context entries. Existing
// keys in base are kept unless a custom context of the same name replaces them.
func (o *MessageOptions) Context(base map[string]interface{}) map[string]interface{} {
	context := make(map[string]interface{}, len(base))
	for k, v := range base {
		context[k] = v
	}
	if o == nil {
		return context
	}
	for k, v := range o.CustomContexts {
		context[k] = v
	}
	if len(o.ExternalIDs) > 0 {
		context["externalId"] = o.ExternalIDs
	}
	return context
}
