// Package adfilters provides a named registry of filters over ad-attribute
// maps. Integrations register filters at startup to add, replace, or remove
// attributes before a tag is serialized; the Ad Manager path runs its
// attributes through the "admanager_tag_attributes" chain.
package adfilters

import "sync"

// Filter receives the ad attributes and returns the (possibly modified) map.
// A filter may mutate its argument and return it, or return a new map.
// Returning nil removes all attributes.
type Filter func(attrs map[string]string) map[string]string

var (
	mu      sync.RWMutex
	filters = make(map[string][]Filter)
)

// Register appends fn to the named filter chain. Filters run in
// registration order. Register is typically called from Startup, before
// any requests are served.
func Register(name string, fn Filter) {
	if fn == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	filters[name] = append(filters[name], fn)
}

// Apply runs the named chain over attrs and returns the result.
// With no registered filters, attrs is returned unchanged.
func Apply(name string, attrs map[string]string) map[string]string {
	mu.RLock()
	chain := filters[name]
	mu.RUnlock()

	for _, fn := range chain {
		attrs = fn(attrs)
	}
	return attrs
}

// Reset removes all registered filters. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	filters = make(map[string][]Filter)
}
