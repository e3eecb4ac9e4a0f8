// Package eventful provides a synchronous publish/subscribe primitive: a
// subject embeds a State, registers interested observers, marks itself
// changed, and broadcasts an arbitrary argument list to every observer in
// registration order.
//
//	type Ticker struct {
//		*eventful.State
//	}
//
//	t := Ticker{State: eventful.New()}
//	t.Add(watcher)
//	t.SetChanged(true)
//	t.Notify(time.Now(), price)
//
// Delivery is a single synchronous fan-out per notification cycle: no
// queuing, no retries, no topic routing.
package eventful

// Observer receives notifications from a subject. OnChanged is invoked once
// per registered occurrence with the broadcast arguments passed through
// unchanged. A non-nil error aborts the current broadcast (see State.Notify).
type Observer interface {
	OnChanged(args ...any) error
}

// ObserverFunc adapts a plain function to the Observer interface.
//
// Function types are not comparable, so a func-adapted observer can never be
// matched by State.Remove; detach it with Clear or by rebuilding the registry.
type ObserverFunc func(args ...any) error

func (f ObserverFunc) OnChanged(args ...any) error {
	return f(args...)
}
