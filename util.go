package ruddertyper

import (
	"reflect"
	"time"
)

// Allows for overriding in tests
var now = time.Now

func isNilPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
