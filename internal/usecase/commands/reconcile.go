package commands

import (
	"context"
	"log/slog"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/events"
	"hothour/internal/pkg/clock"
	"hothour/internal/pkg/errs"
)

type ReconcileCommands interface {
	Reconcile(ctx context.Context) (ReconcileResult, error)
}

type ReconcileResult struct {
	Examined       int
	Transitioned   int
	PriceUpdates   int
	TurboActivated int
	Failed         int
}

type reconcileCommandsImpl struct {
	auctionRepo AuctionRepository
	publisher   events.Publisher
	clock       clock.Clock
}

func NewReconcileCommands(auctionRepo AuctionRepository, publisher events.Publisher, clock clock.Clock) ReconcileCommands {
	return &reconcileCommandsImpl{
		auctionRepo: auctionRepo,
		publisher:   publisher,
		clock:       clock,
	}
}

// Reconcile walks every open auction once: applies due status transitions,
// re-derives the current price, and activates turbo when the trigger window
// has been entered. Each auction is handled independently so one failure
// never blocks the rest of the batch.
func (r *reconcileCommandsImpl) Reconcile(ctx context.Context) (ReconcileResult, error) {
	open, err := r.auctionRepo.ListOpen(ctx)
	if err != nil {
		return ReconcileResult{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := ReconcileResult{Examined: len(open)}
	now := r.clock.Now()

	for _, a := range open {
		if err := r.reconcileOne(ctx, a, now, &result); err != nil {
			result.Failed++
			slog.Error("failed to reconcile auction", "auction_id", a.ID(), "error", err.Error())
		}
	}
	return result, nil
}

func (r *reconcileCommandsImpl) reconcileOne(ctx context.Context, a *auction.Auction, now time.Time, result *ReconcileResult) error {
	status := a.Status()
	next := a.NextStatus(now)
	price, bd := a.PriceAt(now)

	if next != status {
		if err := r.auctionRepo.UpdateStatus(ctx, a.ID(), next); err != nil {
			return err
		}
		result.Transitioned++
		r.publish(ctx, events.AuctionTopic(a.ID()), events.NewAuctionUpdated(a.ID(), next.String(), price.String(), now))
	}
	if next != auction.StatusActive {
		return nil
	}

	if !price.Equal(a.CurrentPrice()) {
		if err := r.auctionRepo.UpdateCurrentPrice(ctx, a.ID(), price); err != nil {
			return err
		}
		result.PriceUpdates++
		r.publish(ctx, events.AuctionTopic(a.ID()), events.NewPriceUpdate(a.ID(), price.String(), bd, now))
	}

	if a.TurboDue(now) {
		activated, err := r.auctionRepo.ActivateTurbo(ctx, a.ID(), now)
		if err != nil {
			return err
		}
		// Only the tick that actually flipped the row announces it; a
		// concurrent tick losing this race stays silent.
		if activated {
			result.TurboActivated++
			r.publish(ctx, events.AuctionTopic(a.ID()),
				events.NewTurboTriggered(a.ID(), now, a.RemainingMinutes(now), now))
		}
	}
	return nil
}

func (r *reconcileCommandsImpl) publish(ctx context.Context, topic string, payload any) {
	if err := r.publisher.Publish(ctx, topic, payload); err != nil {
		slog.Warn("failed to publish reconciliation event", "topic", topic, "error", err.Error())
	}
}
