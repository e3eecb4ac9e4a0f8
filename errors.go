package eventful

import "errors"

// Sentinel errors for observer registration and the named registry.
var (
	// ErrMissingReaction is returned by Add and RegisterObserver when the
	// supplied handle cannot react: a nil interface, or an interface holding
	// a nil value. The type system guarantees the method set at compile time;
	// this is the runtime remnant of the capability check, surfaced at
	// registration rather than as a panic mid-broadcast.
	ErrMissingReaction = errors.New("observer missing reaction method")

	ErrNotFound      = errors.New("observer not found")
	ErrAlreadyExists = errors.New("observer already registered")
	ErrEmptyName     = errors.New("observer name is empty")
)
