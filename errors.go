package ruddertyper

import (
	"errors"
	"fmt"
	"strings"
)

// Error Variables
type RudderTyperError error

var (
	ErrMissingAnalytics RudderTyperError = errors.New("no analytics instance set, call SetAnalytics before firing analytics calls")
	ErrMissingIdentity  RudderTyperError = errors.New("at least one of userId or anonymousId must be set")
	ErrViolation        RudderTyperError = errors.New("tracking plan violation")
	ErrFailedEnqueue    RudderTyperError = errors.New("failed to enqueue message")
	ErrFrozenProperties RudderTyperError = errors.New("properties are frozen")
	ErrInvalidConfig    RudderTyperError = errors.New("invalid ruddertyper config")
)

// Violation describes one way a message failed its tracking plan schema.
type Violation struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

type ViolationError struct {
	Event      string
	Violations []Violation
}

func (e *ViolationError) Error() string {
	descriptions := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		descriptions = append(descriptions, v.String())
	}
	return fmt.Sprintf("%q violates its tracking plan: %s", e.Event, strings.Join(descriptions, "; "))
}

func (e *ViolationError) Is(target error) bool { return target == ErrViolation }

type EnqueueError struct {
	Type MessageType
	Err  error
}

func (e *EnqueueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to enqueue %s call: %s", e.Type, e.Err.Error())
	} else {
		return fmt.Sprintf("Failed to enqueue %s call", e.Type)
	}
}

func (e *EnqueueError) Unwrap() error { return e.Err }

func (e *EnqueueError) Is(target error) bool { return target == ErrFailedEnqueue }

type FrozenPropertiesError struct {
	Key string
}

func (e *FrozenPropertiesError) Error() string {
	return fmt.Sprintf("cannot put %q: properties are frozen", e.Key)
}

func (e *FrozenPropertiesError) Is(target error) bool { return target == ErrFrozenProperties }

type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("Invalid config %s: %s", e.Path, e.Err.Error())
	}
	return fmt.Sprintf("Invalid config: %s", e.Err.Error())
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

func toError(err interface{}) error {
	errAsError, ok := err.(error)
	if ok {
		return errAsError
	} else {
		errAsString, ok := err.(string)
		if ok {
			return errors.New(errAsString)
		} else {
			return fmt.Errorf("%v", err)
		}
	}
}
