package ruddertyper

import (
	"fmt"
	"sync"
)

// errorBoundary keeps panics raised by the host SDK or by generated
// ToProperties implementations from escaping a public call.
type errorBoundary struct {
	seen     map[string]bool
	seenLock sync.RWMutex
}

func newErrorBoundary() *errorBoundary {
	return &errorBoundary{
		seen: make(map[string]bool),
	}
}

func (e *errorBoundary) checkSeen(exceptionString string) bool {
	e.seenLock.Lock()
	defer e.seenLock.Unlock()
	if e.seen[exceptionString] {
		return true
	}
	e.seen[exceptionString] = true
	return false
}

func (e *errorBoundary) captureCall(caller string, task func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %w", caller, toError(r))
			e.logException(err)
		}
	}()
	return task()
}

func (e *errorBoundary) logException(exception error) {
	if exception == nil {
		return
	}
	if e.checkSeen(exception.Error()) {
		return
	}
	Logger().LogError(exception)
}
