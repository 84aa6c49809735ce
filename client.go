package ruddertyper

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	UnknownCallEvent  = "Unknown Analytics Call Fired"
	UnknownCallUserID = "ruddertyper"
)

// A Client forwards typed analytics calls to a host Analytics instance,
// attaching the generator context to every message and checking it against
// the registered tracking plan schemas.
//
// A Client is safe for concurrent use.
type Client struct {
	generatorContext GeneratorContext
	options          *Options
	analytics        Analytics
	mu               sync.RWMutex
	schemas          *schemaRegistry
	enricher         *contextEnricher
	violations       *TTLSet
	errorBoundary    *errorBoundary
	logger           *OutputLogger
}

// Initializes a Client for the given generator context
func NewClient(generatorContext GeneratorContext) *Client {
	return NewClientWithOptions(generatorContext, &Options{})
}

// Initializes a Client for the given generator context and options.
//
// The output logger is process-wide: each new client replaces it, so logs
// and metrics from every client go to the sink of the latest one. Shutdown
// only shuts down the observability client this client installed.
func NewClientWithOptions(generatorContext GeneratorContext, options *Options) *Client {
	if options == nil {
		options = &Options{}
	}
	logger := InitializeGlobalOutputLogger(options.OutputLoggerOptions, options.ObservabilityClient)
	logger.Initialize()
	logger.Debug(GetOptionLoggingCopy(*options))

	return &Client{
		generatorContext: generatorContext,
		options:          options,
		analytics:        options.Analytics,
		schemas:          newSchemaRegistry(),
		enricher:         newContextEnricher(options),
		violations:       NewTTLSet(options.ViolationDedupeInterval),
		errorBoundary:    newErrorBoundary(),
		logger:           logger,
	}
}

func (c *Client) GeneratorContext() GeneratorContext {
	return c.generatorContext
}

// SetAnalytics replaces the analytics instance calls are forwarded to.
func (c *Client) SetAnalytics(analytics Analytics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analytics = analytics
}

func (c *Client) getAnalytics() Analytics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.analytics
}

// RegisterSchema compiles the JSON schema of a tracking plan event. Track
// calls are matched by event name; use "page", "screen", "identify" or
// "group" for the other calls.
func (c *Client) RegisterSchema(event string, schemaJSON string) error {
	schema, err := NewEventSchema(schemaJSON)
	if err != nil {
		return err
	}
	c.schemas.register(event, schema)
	return nil
}

func (c *Client) Track(event string, properties Serializable, msg Message) error {
	msg.Type = TrackMessage
	msg.Event = event
	msg.Properties = toProperties(properties)
	return c.Enqueue(msg)
}

func (c *Client) Page(name string, properties Serializable, msg Message) error {
	msg.Type = PageMessage
	msg.Name = name
	msg.Properties = toProperties(properties)
	return c.Enqueue(msg)
}

func (c *Client) Screen(name string, properties Serializable, msg Message) error {
	msg.Type = ScreenMessage
	msg.Name = name
	msg.Properties = toProperties(properties)
	return c.Enqueue(msg)
}

func (c *Client) Identify(traits Serializable, msg Message) error {
	msg.Type = IdentifyMessage
	msg.Traits = toProperties(traits)
	return c.Enqueue(msg)
}

func (c *Client) Group(groupID string, traits Serializable, msg Message) error {
	msg.Type = GroupMessage
	msg.GroupID = groupID
	msg.Traits = toProperties(traits)
	return c.Enqueue(msg)
}

// UnknownCall reports a call to an analytics method the generated client
// does not know about.
func (c *Client) UnknownCall(method string) error {
	properties := NewProperties().
		PutValue("method", []interface{}{method}).
		Freeze()
	return c.Enqueue(Message{
		Type:       TrackMessage,
		Event:      UnknownCallEvent,
		UserID:     UnknownCallUserID,
		Properties: properties,
	})
}

// Enqueue attaches the generator context to msg, validates it, and hands it
// to the analytics instance. Violations are reported but do not stop the
// message.
func (c *Client) Enqueue(msg Message) error {
	return c.errorBoundary.captureCall(string(msg.Type), func() error {
		analytics := c.getAnalytics()
		if analytics == nil {
			return ErrMissingAnalytics
		}
		if msg.UserID == "" && msg.AnonymousID == "" {
			return ErrMissingIdentity
		}

		msg = c.prepare(msg)
		if !c.options.DisableValidation {
			c.validate(msg)
		}

		if err := analytics.Enqueue(msg); err != nil {
			Logger().Increment("enqueue_failed", 1, map[string]interface{}{"type": string(msg.Type)})
			return &EnqueueError{Type: msg.Type, Err: err}
		}
		Logger().Increment("events_enqueued", 1, map[string]interface{}{"type": string(msg.Type)})
		return nil
	})
}

func (c *Client) prepare(msg Message) Message {
	if msg.MessageID == "" {
		msg.MessageID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = now()
	}
	// Options may be shared between calls, so the context goes on a clone.
	msg.Options = c.generatorContext.AttachContext(msg.Options.Clone()).(*MessageOptions)
	msg.Context = msg.Options.Context(msg.Context)
	c.enricher.enrich(msg.Context)
	return msg
}

func (c *Client) validate(msg Message) {
	schema, ok := c.schemas.get(schemaKey(msg))
	if !ok {
		return
	}
	start := now()
	violations, err := schema.Validate(msg)
	Logger().Distribution("validation_latency_ms", float64(now().Sub(start))/float64(time.Millisecond),
		map[string]interface{}{"event": schemaKey(msg)})
	if err != nil {
		Logger().LogError(err)
		return
	}
	if len(violations) == 0 {
		return
	}
	Logger().Increment("violations", len(violations), map[string]interface{}{"event": schemaKey(msg)})
	if c.options.OnViolation != nil {
		c.options.OnViolation(msg, violations)
		return
	}
	c.logViolations(msg, violations)
}

func (c *Client) logViolations(msg Message, violations []Violation) {
	unseen := make([]Violation, 0, len(violations))
	for _, v := range violations {
		if c.violations.AddIfAbsent(schemaKey(msg) + "|" + v.Field + "|" + v.Type) {
			unseen = append(unseen, v)
		}
	}
	if len(unseen) > 0 {
		Logger().LogViolation(msg, unseen)
	}
}

// Shutdown stops background work. Messages already handed to the analytics
// instance are its responsibility.
func (c *Client) Shutdown() {
	c.violations.Shutdown()
	c.logger.Shutdown()
}

func toProperties(s Serializable) *Properties {
	if s == nil || isNilPointer(s) {
		return NewProperties().Freeze()
	}
	return s.ToProperties()
}
