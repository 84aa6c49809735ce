package ruddertyper

import "time"

type MessageType string

const (
	TrackMessage    MessageType = "track"
	PageMessage     MessageType = "page"
	ScreenMessage   MessageType = "screen"
	IdentifyMessage MessageType = "identify"
	GroupMessage    MessageType = "group"
)

// Message is one analytics call handed to the host SDK.
//
// NOTE: at least one of UserID or AnonymousID must be set.
type Message struct {
	Type        MessageType            `json:"type"`
	MessageID   string                 `json:"messageId"`
	UserID      string                 `json:"userId,omitempty"`
	AnonymousID string                 `json:"anonymousId,omitempty"`
	Event       string                 `json:"event,omitempty"`
	Name        string                 `json:"name,omitempty"`
	GroupID     string                 `json:"groupId,omitempty"`
	Properties  *Properties            `json:"properties,omitempty"`
	Traits      *Properties            `json:"traits,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
	Options     *MessageOptions        `json:"-"`
}

// PutCustomContext lets a Message be passed where ContextOptions are expected.
// The context is written to the message options so it survives the merge
// done before enqueueing.
func (m *Message) PutCustomContext(key string, context map[string]interface{}) {
	if m.Options == nil {
		m.Options = NewMessageOptions()
	}
	m.Options.PutCustomContext(key, context)
}

// Analytics is the host SDK a client forwards messages to.
type Analytics interface {
	Enqueue(msg Message) error
}

// AnalyticsFunc adapts a function to the Analytics interface.
type AnalyticsFunc func(msg Message) error

func (f AnalyticsFunc) Enqueue(msg Message) error {
	return f(msg)
}
