package ruddertyper

import "sync"

// Using global state variables directly will lead to race conditions
// Instead, define an accessor below using the Mutex lock
type GlobalState struct {
	logger *OutputLogger
	mu     sync.RWMutex
}

var global GlobalState

func Logger() *OutputLogger {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logger
}

// InitializeGlobalOutputLogger replaces the process-wide logger and returns
// the new one.
func InitializeGlobalOutputLogger(options OutputLoggerOptions, observabilityClient IObservabilityClient) *OutputLogger {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = newOutputLogger(options, observabilityClient)
	return global.logger
}
