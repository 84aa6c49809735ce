package ruddertyper

import "sync"

// loaderOptions has the same fields as IPCountryOptions and UAParserOptions,
// so both convert to it directly.
type loaderOptions struct {
	Disabled     bool
	LazyLoad     bool
	EnsureLoaded bool
}

// lazyLoader builds a value in the background. Unless LazyLoad is set the
// constructor waits for it.
type lazyLoader[T any] struct {
	options loaderOptions
	value   T
	ready   bool
	wg      sync.WaitGroup
	mu      sync.RWMutex
}

func newLazyLoader[T any](options loaderOptions, load func() T) *lazyLoader[T] {
	l := &lazyLoader[T]{options: options}
	if options.Disabled {
		return l
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		value := load()
		l.mu.Lock()
		l.value = value
		l.ready = true
		l.mu.Unlock()
	}()
	if !options.LazyLoad {
		l.wg.Wait()
	}
	return l
}

func (l *lazyLoader[T]) isReady() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}

func (l *lazyLoader[T]) ensureLoaded() {
	if l.options.Disabled {
		return
	}
	l.wg.Wait()
}

// get returns the loaded value, or false while it is still loading. With
// EnsureLoaded set it blocks until loading finishes.
func (l *lazyLoader[T]) get() (T, bool) {
	if l.options.Disabled {
		var zero T
		return zero, false
	}
	if l.options.EnsureLoaded {
		l.wg.Wait()
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.ready
}
