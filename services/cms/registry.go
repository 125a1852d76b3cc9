package cms

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"concierge/models"
)

var registry = struct {
	mu    sync.RWMutex
	names map[string]struct{}
}{
	names: map[string]struct{}{models.ExclusiveServicesCollection: {}},
}

// Register adds collection names the gateway may read.
func Register(names ...string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			registry.names[n] = struct{}{}
		}
	}
}

// Known reports whether name is a registered collection.
func Known(name string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.names[name]
	return ok
}

// Collections lists registered collections in name order.
func Collections() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	out := make([]string, 0, len(registry.names))
	for n := range registry.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// CheckCollection fails with ErrUnknownCollection for unregistered names.
func CheckCollection(name string) error {
	if !Known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return nil
}

// CheckID fails with ErrInvalidID for blank ids.
func CheckID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	return nil
}
