package singleton

import (
	"fmt"
	"io"
	"sync"
)

// Registry is the resource the pattern guards: a minimal string-to-string
// settings store. It has no exported constructor; the only way to obtain one
// is Instance().
type Registry struct {
	settings map[string]string
}

var (
	instance *Registry
	once     sync.Once
)

// Instance returns the process-wide Registry, constructing it on first call.
// Repeated calls return the same pointer.
func Instance() *Registry {
	once.Do(func() {
		instance = &Registry{settings: make(map[string]string)}
	})
	return instance
}

// Set stores value under key, replacing any previous value.
func (r *Registry) Set(key, value string) {
	r.settings[key] = value
}

// Get returns the value stored under key, or the empty string if absent.
func (r *Registry) Get(key string) string {
	return r.settings[key]
}

// Demo writes the unit's usage transcript: two Instance() calls observe the
// same underlying Registry.
func Demo(w io.Writer) {
	first := Instance()
	first.Set("locale", "it_IT")

	second := Instance()
	fmt.Fprintln(w, "locale:", second.Get("locale"))
	fmt.Fprintln(w, "same instance:", first == second)
}
