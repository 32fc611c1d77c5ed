package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baxromumarov/unbounded"
	"github.com/baxromumarov/unbounded/chanx"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := run(ctx, cfg, log); err != nil {
		log.Error("demo failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("demo finished", slog.Duration("elapsed", time.Since(start)))
}

// run sends producers' values through an MPSC channel and a broadcast hub.
// Receivers forked up front and one forked after the last send must all
// observe the same number of values.
func run(ctx context.Context, cfg config, log *slog.Logger) error {
	jobs := unbounded.New[int](unbounded.WithLogger(log), unbounded.WithName("jobs"))
	hub := unbounded.NewMulti[int](unbounded.WithLogger(log), unbounded.WithName("events"))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, sum := 0, 0
		for v := range jobs.Drain(gctx) {
			n++
			sum += v
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		log.Info("jobs drained", slog.Int("count", n), slog.Int("sum", sum))
		return nil
	})

	consume := func(name string, r *unbounded.Receiver[int]) {
		g.Go(func() error {
			values, err := chanx.Collect[int](gctx, r)
			if err != nil {
				return err
			}
			log.Info("receiver drained",
				slog.String("receiver", name),
				slog.String("receiver_id", r.ID().String()),
				slog.Int("count", len(values)),
			)
			return nil
		})
	}

	for i := range cfg.Forks {
		consume(fmt.Sprintf("early-%d", i), hub.Fork())
	}

	var producers errgroup.Group
	for p := range cfg.Producers {
		producers.Go(func() error {
			for i := range cfg.Values {
				v := p*cfg.Values + i
				if err := jobs.Send(v); err != nil {
					return err
				}
				if err := hub.Send(v); err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := producers.Wait()
	jobs.Close()
	consume("late", hub.Fork())
	hub.Close()
	if err != nil {
		return err
	}

	return g.Wait()
}
