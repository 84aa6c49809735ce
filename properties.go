package ruddertyper

import (
	"bytes"
	"encoding/json"
)

// Properties is an ordered key-value bag holding the properties (or traits)
// of a single analytics call.
//
// Values are plain serializable data: strings, numbers, booleans, nil, nested
// *Properties, or []interface{} of those. A nil value is kept as an explicit
// null entry. Once frozen, a bag no longer accepts writes.
type Properties struct {
	keys   []string
	values map[string]interface{}
	frozen bool
}

func NewProperties() *Properties {
	return &Properties{
		keys:   make([]string, 0),
		values: make(map[string]interface{}),
	}
}

// PutValue stores value under key and returns the bag for chaining.
// Re-putting an existing key overwrites it in place.
func (p *Properties) PutValue(key string, value interface{}) *Properties {
	if p.frozen {
		Logger().LogError(&FrozenPropertiesError{Key: key})
		return p
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

func (p *Properties) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

func (p *Properties) IsFrozen() bool {
	return p != nil && p.frozen
}

// Freeze makes the bag read-only. Nested bags are frozen too.
func (p *Properties) Freeze() *Properties {
	if p == nil {
		return nil
	}
	p.frozen = true
	for _, v := range p.values {
		freezeValue(v)
	}
	return p
}

func freezeValue(v interface{}) {
	switch val := v.(type) {
	case *Properties:
		val.Freeze()
	case []interface{}:
		for _, item := range val {
			freezeValue(item)
		}
	}
}

// Copy returns a writable copy of the bag. Nested bags are copied too,
// except frozen ones, which are shared.
func (p *Properties) Copy() *Properties {
	if p == nil {
		return nil
	}
	c := &Properties{
		keys:   make([]string, len(p.keys)),
		values: make(map[string]interface{}, len(p.values)),
	}
	copy(c.keys, p.keys)
	for k, v := range p.values {
		c.values[k] = copyValue(v)
	}
	return c
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case *Properties:
		if val.IsFrozen() {
			return val
		}
		return val.Copy()
	case []interface{}:
		if val == nil {
			return val
		}
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = copyValue(item)
		}
		return items
	default:
		return v
	}
}

// Map returns a plain map representation, with nested bags converted to
// maps as well. The result shares nothing with the bag.
func (p *Properties) Map() map[string]interface{} {
	if p == nil {
		return nil
	}
	m := make(map[string]interface{}, len(p.keys))
	for _, k := range p.keys {
		m[k] = plainValue(p.values[k])
	}
	return m
}

func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case *Properties:
		if val == nil {
			return nil
		}
		return val.Map()
	case []interface{}:
		if val == nil {
			return val
		}
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = plainValue(item)
		}
		return items
	default:
		return v
	}
}

func (p *Properties) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
