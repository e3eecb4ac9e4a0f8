package eventful

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/google/uuid"
)

// State is the observer registry a subject embeds to become notifiable. It
// holds the ordered observer collection (insertion order, duplicates
// permitted) and the changed flag that gates broadcasts.
//
// State provides no internal locking: a single subject is expected to be
// driven from one goroutine, and callers that share a State across
// goroutines must synchronize Add/Remove/Notify externally. Reentrant
// mutation is safe: an observer may Add or Remove observers from within its
// own reaction, and the change takes effect on the next Notify (see Notify).
type State struct {
	id        string
	observers []Observer
	changed   bool
	logger    *slog.Logger
}

// Option configures a State created by New.
type Option func(*State)

// WithLogger sets the logger for attach/detach/broadcast debug logging.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) { s.logger = logger }
}

// New creates an empty State in the clean (unchanged) condition.
func New(opts ...Option) *State {
	s := &State{
		id:        uuid.Must(uuid.NewV7()).String(),
		observers: make([]Observer, 0),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique identifier of this State, for log correlation.
func (s *State) ID() string {
	return s.id
}

// Add appends observer to the end of the registry. Registration order is
// broadcast order, and the same observer may be registered more than once —
// it is then notified once per occurrence.
//
// A handle that cannot react (nil interface, or an interface holding a nil
// value) is rejected with ErrMissingReaction before any mutation.
func (s *State) Add(observer Observer) error {
	if observer == nil || holdsNil(observer) {
		return ErrMissingReaction
	}

	s.observers = append(s.observers, observer)
	s.logger.Debug(
		"observer attached",
		slog.String("state_id", s.id),
		slog.Int("count", len(s.observers)),
	)
	return nil
}

// Remove deletes every occurrence equal to observer from the registry.
// Removing an observer that was never added is a no-op. Observers whose
// dynamic type is not comparable (such as ObserverFunc) match nothing and
// are likewise left untouched.
func (s *State) Remove(observer Observer) {
	if observer == nil || !reflect.TypeOf(observer).Comparable() {
		return
	}

	before := len(s.observers)
	s.observers = slices.DeleteFunc(s.observers, func(o Observer) bool {
		return o == observer
	})

	if removed := before - len(s.observers); removed > 0 {
		s.logger.Debug(
			"observer detached",
			slog.String("state_id", s.id),
			slog.Int("removed", removed),
			slog.Int("count", len(s.observers)),
		)
	}
}

// Clear empties the observer registry. No-op when already empty.
func (s *State) Clear() {
	s.observers = s.observers[:0]
}

// Count returns the number of registered observer handles, counting
// duplicate registrations once per occurrence.
func (s *State) Count() int {
	return len(s.observers)
}

// SetChanged sets the changed flag. Notify broadcasts only while the flag is
// true, and clearing it here suppresses the pending broadcast without
// notifying anyone.
func (s *State) SetChanged(changed bool) {
	s.changed = changed
}

// Changed reports whether the subject has been marked changed since the last
// completed broadcast.
func (s *State) Changed() bool {
	return s.changed
}

// Notify broadcasts args to every registered observer, in registration
// order, then clears the changed flag. When the changed flag is false it
// returns immediately without invoking anyone or touching the flag.
//
// The broadcast iterates a snapshot of the registry taken when Notify is
// called: observers added or removed during the broadcast — including by a
// reacting observer — do not affect the current cycle and take effect on
// the next Notify.
//
// The first observer to return a non-nil error aborts the broadcast: the
// error is returned to the caller unmodified, the remaining snapshot entries
// are not invoked, and the changed flag stays set because the broadcast did
// not complete. A later Notify retries the full (current) registry.
func (s *State) Notify(args ...any) error {
	if !s.changed {
		return nil
	}

	snapshot := slices.Clone(s.observers)
	s.logger.Debug(
		"broadcasting",
		slog.String("state_id", s.id),
		slog.Int("observers", len(snapshot)),
		slog.Int("argc", len(args)),
	)

	for _, observer := range snapshot {
		if err := observer.OnChanged(args...); err != nil {
			return err
		}
	}

	s.changed = false
	return nil
}

// holdsNil reports whether the interface wraps a nil value of a pointer-like
// type, which would make OnChanged a nil dereference waiting for Notify.
func holdsNil(observer Observer) bool {
	v := reflect.ValueOf(observer)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
