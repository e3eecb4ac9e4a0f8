package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/toddsundsted/eventful"
	"github.com/toddsundsted/eventful/ticker"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to ticker config JSON file (optional)")
		symbol     = flag.String("symbol", "", "Ticker symbol (overrides config)")
		ticks      = flag.Int("ticks", 0, "Number of price ticks to run (overrides config)")
		intervalMS = flag.Int("interval-ms", 0, "Milliseconds between ticks (overrides config)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := ticker.DefaultConfig()
	if *configFile != "" {
		loaded, err := ticker.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *symbol != "" {
		cfg.Symbol = *symbol
	}
	if *ticks > 0 {
		cfg.Ticks = *ticks
	}
	if *intervalMS > 0 {
		cfg.IntervalMS = *intervalMS
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	tk, err := ticker.New(cfg.Symbol, ticker.RandomSource(60, 140), ticker.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create ticker: %v", err)
	}

	observers := []eventful.Observer{
		&ticker.LowWarner{Limit: cfg.LowLimit, Out: os.Stdout},
		&ticker.HighWarner{Limit: cfg.HighLimit, Out: os.Stdout},
	}
	if *verbose {
		observers = append(observers, eventful.NewSlogObserver(logger))
	}
	for _, obs := range observers {
		if err := tk.Add(obs); err != nil {
			log.Fatalf("Failed to attach observer: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("watching %s: below %v / above %v, %d ticks\n",
		cfg.Symbol, cfg.LowLimit, cfg.HighLimit, cfg.Ticks)

	if err := tk.Run(ctx, cfg.Ticks, cfg.Interval()); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		log.Fatalf("Run failed: %v", err)
	}
}
