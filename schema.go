package ruddertyper

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// EventSchema is the compiled JSON schema of one tracking plan event.
type EventSchema struct {
	schema *gojsonschema.Schema
}

func NewEventSchema(schemaJSON string) (*EventSchema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile event schema: %w", err)
	}
	return &EventSchema{schema: schema}, nil
}

// Validate checks a message payload against the schema and returns every
// violation found. The payload is the message rendered as JSON, so schemas
// address properties under "properties" (or "traits").
func (s *EventSchema) Validate(msg Message) ([]Violation, error) {
	payload, err := json.Marshal(validationPayload(msg))
	if err != nil {
		return nil, err
	}
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	violations := make([]Violation, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, Violation{
			Field:       desc.Field(),
			Type:        desc.Type(),
			Description: desc.Description(),
		})
	}
	return violations, nil
}

func validationPayload(msg Message) map[string]interface{} {
	payload := map[string]interface{}{
		"type": msg.Type,
	}
	if msg.Properties != nil {
		payload["properties"] = msg.Properties
	} else {
		payload["properties"] = map[string]interface{}{}
	}
	if msg.Traits != nil {
		payload["traits"] = msg.Traits
	}
	if msg.Event != "" {
		payload["event"] = msg.Event
	}
	if msg.Name != "" {
		payload["name"] = msg.Name
	}
	if msg.Context != nil {
		payload["context"] = msg.Context
	}
	return payload
}

// schemaRegistry maps event keys to their schemas. Track events are keyed
// by event name; other calls by their message type.
type schemaRegistry struct {
	schemas map[string]*EventSchema
	mu      sync.RWMutex
}

func newSchemaRegistry() *schemaRegistry {
	return &schemaRegistry{schemas: make(map[string]*EventSchema)}
}

func (r *schemaRegistry) register(key string, schema *EventSchema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[key] = schema
}

func (r *schemaRegistry) get(key string) (*EventSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[key]
	return s, ok
}

func schemaKey(msg Message) string {
	if msg.Type == TrackMessage {
		return msg.Event
	}
	return string(msg.Type)
}
