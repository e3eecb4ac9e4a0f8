// Package ticker is a demo subject for the eventful library: a price ticker
// that polls a price source, marks itself changed when the price moves, and
// broadcasts (time, price) to its observers. Limit warners that react to
// prices crossing a threshold live in warner.go.
package ticker

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/toddsundsted/eventful"
)

// ErrNilSource is returned by New when no price source is supplied.
var ErrNilSource = errors.New("price source is nil")

// PriceFunc supplies the current price for a symbol.
type PriceFunc func() float64

// RandomSource returns a PriceFunc producing uniform prices in [low, high),
// for demos and tests that want crossings of both warner limits.
func RandomSource(low, high float64) PriceFunc {
	return func() float64 {
		return low + rand.Float64()*(high-low)
	}
}

// Ticker polls a price source and notifies its observers of price movements.
// The embedded State carries the observer registry, so observers attach with
// Add and detach with Remove directly on the Ticker.
type Ticker struct {
	*eventful.State

	symbol string
	source PriceFunc
	logger *slog.Logger

	last float64
	seen bool
}

// Option configures a Ticker created by New.
type Option func(*Ticker)

// WithLogger sets the logger for tick debug logging and for the embedded
// State. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Ticker) { t.logger = logger }
}

// New creates a Ticker for symbol polling source.
func New(symbol string, source PriceFunc, opts ...Option) (*Ticker, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	t := &Ticker{
		symbol: symbol,
		source: source,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.State = eventful.New(eventful.WithLogger(t.logger))

	return t, nil
}

// Symbol returns the ticker symbol.
func (t *Ticker) Symbol() string {
	return t.symbol
}

// Tick polls the price source once and broadcasts (now, price) to the
// observers. The subject is marked changed only when the price differs from
// the previous tick (the first tick always counts as a movement), so a flat
// price produces no notifications.
func (t *Ticker) Tick(now time.Time) error {
	price := t.source()
	if !t.seen || price != t.last {
		t.SetChanged(true)
	}
	t.last = price
	t.seen = true

	t.logger.Debug(
		"tick",
		slog.String("state_id", t.State.ID()),
		slog.String("symbol", t.symbol),
		slog.Float64("price", price),
		slog.Bool("changed", t.Changed()),
	)

	return t.Notify(now, price)
}

// Run polls the source every interval until ticks polls have completed or
// ctx is canceled. The first observer failure aborts the run and is returned
// to the caller.
func (t *Ticker) Run(ctx context.Context, ticks int, interval time.Duration) error {
	clock := time.NewTicker(interval)
	defer clock.Stop()

	for range ticks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-clock.C:
			if err := t.Tick(now); err != nil {
				return err
			}
		}
	}
	return nil
}
