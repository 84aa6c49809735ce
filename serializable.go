package ruddertyper

import "reflect"

// Serializable is implemented by generated property types that can be nested
// inside the properties of another call.
type Serializable interface {
	ToProperties() *Properties
}

// SerializeList converts items into plain serializable values. Nested lists
// of any element type are serialized recursively, Serializable items are replaced by their
// properties, and everything else is passed through. The result has the same
// length and order as items; a nil list stays nil.
//
// Self-referencing lists are not detected and recurse without bound.
func SerializeList(items []interface{}) []interface{} {
	if items == nil {
		return nil
	}
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = serializeValue(item)
	}
	return result
}

// SerializeSlice is SerializeList for typed slices, such as the
// []*Product fields of generated types.
func SerializeSlice[T any](items []T) []interface{} {
	if items == nil {
		return nil
	}
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = serializeValue(item)
	}
	return result
}

func serializeValue(item interface{}) interface{} {
	switch v := item.(type) {
	case nil:
		return nil
	case []interface{}:
		return SerializeList(v)
	case *Properties:
		return v
	case Serializable:
		if isNilPointer(v) {
			return nil
		}
		return v.ToProperties()
	case []byte:
		return v
	default:
		return serializeSliceValue(item)
	}
}

// serializeSliceValue flattens typed slices such as []*Product or
// [][]string. Non-slice values are returned unchanged.
func serializeSliceValue(item interface{}) interface{} {
	rv := reflect.ValueOf(item)
	if rv.Kind() != reflect.Slice {
		return item
	}
	if rv.IsNil() {
		return []interface{}(nil)
	}
	result := make([]interface{}, rv.Len())
	for i := range result {
		result[i] = serializeValue(rv.Index(i).Interface())
	}
	return result
}
