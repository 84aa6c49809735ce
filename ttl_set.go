package ruddertyper

import (
	"errors"
	"sync"
	"time"
)

const defaultViolationDedupeInterval = time.Minute

// TTLSet is a set of keys that is emptied every reset interval. The client
// uses it to report each distinct violation at most once per interval.
type TTLSet struct {
	store         map[string]struct{}
	mu            sync.RWMutex
	resetInterval time.Duration
	shutdown      bool
}

func NewTTLSet(resetInterval time.Duration) *TTLSet {
	if resetInterval <= 0 {
		resetInterval = defaultViolationDedupeInterval
	}
	set := &TTLSet{
		store:         make(map[string]struct{}),
		resetInterval: resetInterval,
	}

	go set.startResetThread()
	return set
}

func (s *TTLSet) Add(key string) {
	s.mu.Lock()
	s.store[key] = struct{}{}
	s.mu.Unlock()
}

// AddIfAbsent adds key and reports whether it was missing.
func (s *TTLSet) AddIfAbsent(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.store[key]; exists {
		return false
	}
	s.store[key] = struct{}{}
	return true
}

func (s *TTLSet) Contains(key string) bool {
	s.mu.RLock()
	_, exists := s.store[key]
	s.mu.RUnlock()
	return exists
}

func (s *TTLSet) Reset() {
	s.mu.Lock()
	s.store = make(map[string]struct{})
	s.mu.Unlock()
}

func (s *TTLSet) Shutdown() {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()
}

func (s *TTLSet) isShutdown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shutdown
}

func (s *TTLSet) startResetThread() {
	for {
		time.Sleep(s.resetInterval)
		if s.isShutdown() {
			break
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					err := errors.New("panic in TTLSet reset thread")
					Logger().LogError(err)
				}
			}()
			s.Reset()
		}()
	}
}
