package eventful

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogObserver emits each notification to a slog.Logger at Info level. The
// broadcast arguments are flattened to positional arg0..argN attributes
// alongside the argument count. It never returns an error, so it cannot
// abort a broadcast.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver that emits to the given logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnChanged(args ...any) error {
	attrs := make([]slog.Attr, 0, len(args)+1)
	attrs = append(attrs, slog.Int("argc", len(args)))
	for i, arg := range args {
		attrs = append(attrs, slog.Any(fmt.Sprintf("arg%d", i), arg))
	}

	o.logger.LogAttrs(context.Background(), slog.LevelInfo, "state changed", attrs...)
	return nil
}
