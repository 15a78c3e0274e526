// Package registry provides the catalog of playable levels.
// Built-in levels register themselves in init() functions and custom level
// files are added at startup, so front ends can list and build levels
// without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// ErrUnknownLevel is returned when a level key is not registered.
var ErrUnknownLevel = errors.New("registry: unknown level")

// Entry describes one playable level.
type Entry struct {
	// Key identifies the level for the CLI and for best-time storage
	// ("1".."5" for built-ins, the file id for custom levels).
	Key string

	// Title is a human-readable name for menus.
	Title string

	// LevelID selects the difficulty scaling (1..5).
	LevelID int

	// Build returns the level geometry. It must return the same geometry
	// on every call.
	Build func() physics.Level

	// Custom marks levels loaded from files.
	Custom bool
}

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a level to the catalog.
// Typically called from an init() function.
// Panics if a level with the same key is already registered.
func Register(e Entry) {
	if err := TryRegister(e); err != nil {
		panic(err.Error())
	}
}

// TryRegister adds a level to the catalog, returning an error instead of
// panicking on a duplicate or incomplete entry.
func TryRegister(e Entry) error {
	if e.Key == "" {
		return fmt.Errorf("registry: level key must not be empty")
	}
	if e.Build == nil {
		return fmt.Errorf("registry: level %q has no builder", e.Key)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[e.Key]; exists {
		return fmt.Errorf("registry: level %q already registered", e.Key)
	}
	entries[e.Key] = e
	return nil
}

// List returns all registered levels: built-ins ordered by level id,
// then custom levels ordered by key.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Custom != b.Custom {
			return !a.Custom
		}
		if !a.Custom && a.LevelID != b.LevelID {
			return a.LevelID < b.LevelID
		}
		return a.Key < b.Key
	})

	return result
}

// Get looks up a level by key.
func Get(key string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w %q", ErrUnknownLevel, key)
	}
	return e, nil
}

// Exists checks if a level with the given key is registered.
func Exists(key string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[key]
	return ok
}

// Next returns the key of the level after key in List order, or "" when
// key is the last one or unknown.
func Next(key string) string {
	list := List()
	for i, e := range list {
		if e.Key == key && i+1 < len(list) {
			return list[i+1].Key
		}
	}
	return ""
}
