package ruddertyper

import (
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
)

// Options to customize the runtime behavior of a RudderTyper client.
type Options struct {
	// Underlying analytics instance where analytics calls are forwarded on to.
	Analytics Analytics
	// Handler fired when a message does not match its tracking plan schema.
	// Defaults to logging each distinct violation once per ViolationDedupeInterval.
	OnViolation             ViolationHandler
	DisableValidation       bool
	ViolationDedupeInterval time.Duration
	OutputLoggerOptions     OutputLoggerOptions
	ObservabilityClient     IObservabilityClient
	IPCountryOptions        IPCountryOptions
	UAParserOptions         UAParserOptions
}

// ViolationHandler receives a message that failed validation along with
// every violation found. It runs before the message is enqueued.
type ViolationHandler func(msg Message, violations []Violation)

type OutputLoggerOptions struct {
	LogCallback func(message string, err error)
	EnableDebug bool
	// Logger is the sink used when no LogCallback is set. Defaults to a
	// logrus logger writing to stderr.
	Logger *logrus.Logger
}

type IPCountryOptions struct {
	Disabled     bool // Fully disable IP to country lookup
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}

type UAParserOptions struct {
	Disabled     bool // Fully disable UA parser
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}

func GetOptionLoggingCopy(options Options) map[string]interface{} {
	loggingCopy := make(map[string]interface{})
	val := reflect.ValueOf(options)

	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		fieldValue := val.Field(i)
		switch fieldValue.Kind() {
		case reflect.Bool:
			if fieldValue.Bool() {
				loggingCopy[field.Name] = true
			}

		case reflect.Int64:
			if fieldValue.Type() == reflect.TypeOf(time.Duration(0)) {
				if fieldValue.Int() != 0 {
					loggingCopy[field.Name] = time.Duration(fieldValue.Int()).String()
				}
				break
			}
			if fieldValue.Int() != 0 {
				loggingCopy[field.Name] = fieldValue.Int()
			}

		case reflect.Struct:
			if field.Name == "IPCountryOptions" || field.Name == "UAParserOptions" {
				if !fieldValue.IsZero() {
					loggingCopy[field.Name] = fieldValue.Interface()
				}
				break
			}
			if !fieldValue.IsZero() {
				loggingCopy[field.Name] = "set"
			}

		case reflect.Func, reflect.Interface:
			if !fieldValue.IsNil() {
				loggingCopy[field.Name] = "set"
			}

		default:
			// ignore other fields
		}
	}
	return loggingCopy
}
