package eventful

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

type registry struct {
	observers map[string]Observer
	mu        sync.RWMutex
}

var register = &registry{
	observers: map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	},
}

// RegisterObserver adds a named observer to the global registry, for sharing
// sinks between subjects. Pre-registered observers: "noop" (NoOpObserver)
// and "slog" (SlogObserver on the default logger).
// Returns ErrAlreadyExists if the name is taken; use ReplaceObserver to
// update an existing entry. Thread-safe for concurrent registration.
func RegisterObserver(name string, observer Observer) error {
	if name == "" {
		return ErrEmptyName
	}
	if observer == nil {
		return ErrMissingReaction
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.observers[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}

	register.observers[name] = observer
	return nil
}

// ReplaceObserver updates an existing named observer.
// Returns ErrNotFound if no observer with the given name is registered.
// Thread-safe for concurrent access.
func ReplaceObserver(name string, observer Observer) error {
	if name == "" {
		return ErrEmptyName
	}
	if observer == nil {
		return ErrMissingReaction
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.observers[name]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	register.observers[name] = observer
	return nil
}

// GetObserver returns a registered observer by name.
// Returns ErrNotFound for unknown names. Thread-safe for concurrent access.
func GetObserver(name string) (Observer, error) {
	register.mu.RLock()
	defer register.mu.RUnlock()

	observer, exists := register.observers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return observer, nil
}

// ListObservers returns the sorted names of all registered observers.
// Thread-safe for concurrent access.
func ListObservers() []string {
	register.mu.RLock()
	defer register.mu.RUnlock()

	names := make([]string, 0, len(register.observers))
	for name := range register.observers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
