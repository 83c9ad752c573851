// Package reactive provides a minimal observable value.
//
// Values are meant to be owned by a single event loop (in a Bubble Tea app,
// the update goroutine). There is no locking; do not Set from other
// goroutines, send a message instead.
package reactive

// Value holds a scalar and a list of watchers. Set notifies every watcher
// on every call, including when the new value equals the old one; callers
// that want dedup can compare against Get first.
type Value[T any] struct {
	current  T
	watchers []func(T)
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

func (v *Value[T]) Get() T {
	return v.current
}

// Set stores next and runs all watchers synchronously. When Set returns,
// every watcher has seen next.
func (v *Value[T]) Set(next T) {
	v.current = next
	for _, fn := range v.watchers {
		if fn != nil {
			fn(next)
		}
	}
}

// Watch registers fn for future Set calls and returns a func that removes
// it. fn is not invoked with the current value; use Get for the initial
// read. Unwatching during notification takes effect on the next Set.
func (v *Value[T]) Watch(fn func(T)) (unwatch func()) {
	idx := len(v.watchers)
	v.watchers = append(v.watchers, fn)
	return func() {
		v.watchers[idx] = nil
	}
}

// WatcherCount reports live watchers, mostly for teardown assertions.
func (v *Value[T]) WatcherCount() int {
	n := 0
	for _, fn := range v.watchers {
		if fn != nil {
			n++
		}
	}
	return n
}
