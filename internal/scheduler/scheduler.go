// Package scheduler drives the periodic reconciliation tick. The tick is the
// only writer of time-derived auction state; request handlers always compute
// on the fly and never wait for it.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hothour/internal/pkg/config"
	"hothour/internal/usecase/commands"
)

type Scheduler struct {
	reconcile    commands.ReconcileCommands
	cancellation commands.CancellationCommands
	cfg          config.AuctionConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(reconcile commands.ReconcileCommands, cancellation commands.CancellationCommands, cfg config.AuctionConfig) *Scheduler {
	return &Scheduler{
		reconcile:    reconcile,
		cancellation: cancellation,
		cfg:          cfg,
	}
}

func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)
	slog.Info("auction scheduler started", "interval", s.cfg.TickInterval.String())
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	slog.Info("auction scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	// First pass immediately so a restart catches up without waiting a
	// full interval.
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one reconciliation round under a deadline shorter than the tick
// interval, so a stuck database can never make rounds pile up.
func (s *Scheduler) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, s.cfg.TickTimeout)
	defer cancel()

	result, err := s.reconcile.Reconcile(tickCtx)
	if err != nil {
		slog.Error("reconciliation tick failed", "error", err.Error())
	} else if result.Transitioned > 0 || result.PriceUpdates > 0 || result.TurboActivated > 0 || result.Failed > 0 {
		slog.Info("reconciliation tick completed",
			"examined", result.Examined,
			"transitioned", result.Transitioned,
			"price_updates", result.PriceUpdates,
			"turbo_activated", result.TurboActivated,
			"failed", result.Failed,
		)
	}

	swept, err := s.cancellation.SweepOverdue(tickCtx)
	if err != nil {
		slog.Error("no-show sweep failed", "error", err.Error())
	} else if swept > 0 {
		slog.Info("no-show sweep completed", "cancelled", swept)
	}
}
