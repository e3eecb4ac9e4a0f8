package eventful

// NoOpObserver discards all notifications with zero overhead.
type NoOpObserver struct{}

func (NoOpObserver) OnChanged(args ...any) error { return nil }
