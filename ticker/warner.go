package ticker

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrUnexpectedArgs is returned by warners when a notification does not
// carry the (time.Time, float64) arguments a Ticker broadcasts.
var ErrUnexpectedArgs = errors.New("unexpected notification arguments")

// LowWarner warns when the price drops below its limit. It writes one line
// per crossing to Out and ignores prices at or above the limit.
type LowWarner struct {
	Limit float64
	Out   io.Writer
}

func (w *LowWarner) OnChanged(args ...any) error {
	at, price, err := unpack(args)
	if err != nil {
		return err
	}
	if price < w.Limit {
		_, err = fmt.Fprintf(w.Out, "--- %s: price below %v: %v\n", at.Format(time.RFC3339), w.Limit, price)
	}
	return err
}

// HighWarner warns when the price rises above its limit. It writes one line
// per crossing to Out and ignores prices at or below the limit.
type HighWarner struct {
	Limit float64
	Out   io.Writer
}

func (w *HighWarner) OnChanged(args ...any) error {
	at, price, err := unpack(args)
	if err != nil {
		return err
	}
	if price > w.Limit {
		_, err = fmt.Fprintf(w.Out, "--- %s: price above %v: %v\n", at.Format(time.RFC3339), w.Limit, price)
	}
	return err
}

func unpack(args []any) (time.Time, float64, error) {
	if len(args) != 2 {
		return time.Time{}, 0, fmt.Errorf("%w: got %d, want 2", ErrUnexpectedArgs, len(args))
	}
	at, ok := args[0].(time.Time)
	if !ok {
		return time.Time{}, 0, fmt.Errorf("%w: first is %T, want time.Time", ErrUnexpectedArgs, args[0])
	}
	price, ok := args[1].(float64)
	if !ok {
		return time.Time{}, 0, fmt.Errorf("%w: second is %T, want float64", ErrUnexpectedArgs, args[1])
	}
	return at, price, nil
}
