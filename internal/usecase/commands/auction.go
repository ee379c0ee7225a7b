package commands

import (
	"context"
	"log/slog"

	"hothour/internal/domain/auction"
	"hothour/internal/events"
	reqdto "hothour/internal/handler/dto/request"
	"hothour/internal/infra"
	"hothour/internal/pkg/clock"
	"hothour/internal/pkg/config"
	"hothour/internal/pkg/errs"
)

var (
	ErrAuctionNotFound         = errs.New("auction not found")
	ErrAuctionValidation       = errs.New("auction validation error")
	ErrAuctionNotOpen          = errs.New("auction is no longer open")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AuctionCommands interface {
	CreateAuction(ctx context.Context, req reqdto.CreateAuctionRequest) (int64, error)
	UpdateAuction(ctx context.Context, id int64, req reqdto.UpdateAuctionRequest) error
	CancelAuction(ctx context.Context, id int64) error
}

type auctionCommandsImpl struct {
	auctionRepo AuctionRepository
	publisher   events.Publisher
	cfg         config.AuctionConfig
	clock       clock.Clock
}

func NewAuctionCommands(
	auctionRepo AuctionRepository,
	publisher events.Publisher,
	cfg config.AuctionConfig,
	clock clock.Clock,
) AuctionCommands {
	return &auctionCommandsImpl{
		auctionRepo: auctionRepo,
		publisher:   publisher,
		cfg:         cfg,
		clock:       clock,
	}
}

func (a *auctionCommandsImpl) CreateAuction(ctx context.Context, req reqdto.CreateAuctionRequest) (int64, error) {
	params, err := req.ToDomain()
	if err != nil {
		return 0, errs.Mark(err, ErrAuctionValidation)
	}

	policy := auction.TurboPolicy{
		TriggerMins:     a.cfg.TurboTriggerMins,
		IntervalMins:    a.cfg.TurboIntervalMins,
		MinDurationMins: a.cfg.TurboMinDurationMins,
	}

	entity, err := auction.NewAuction(params, policy, a.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrAuctionValidation)
	}

	id, err := a.auctionRepo.Create(ctx, entity)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (a *auctionCommandsImpl) UpdateAuction(ctx context.Context, id int64, req reqdto.UpdateAuctionRequest) error {
	entity, err := a.auctionRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAuctionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !entity.Status().IsOpen() {
		return ErrAuctionNotOpen
	}

	gender := auction.AllowedGender(req.AllowedGender)
	if !gender.IsValid() {
		return ErrAuctionValidation
	}

	err = a.auctionRepo.UpdateDetails(ctx, id, req.Title, req.Description, req.ScheduledAt, gender)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAuctionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	a.announce(ctx, entity, entity.Status())
	return nil
}

// CancelAuction withdraws an unsold auction. SOLD auctions are cancelled
// through their reservation so both records move together.
func (a *auctionCommandsImpl) CancelAuction(ctx context.Context, id int64) error {
	entity, err := a.auctionRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAuctionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !entity.Status().IsOpen() {
		return ErrAuctionNotOpen
	}

	if err := a.auctionRepo.UpdateStatus(ctx, id, auction.StatusCancelled); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	a.announce(ctx, entity, auction.StatusCancelled)
	return nil
}

func (a *auctionCommandsImpl) announce(ctx context.Context, entity *auction.Auction, status auction.Status) {
	now := a.clock.Now()
	price, _ := entity.PriceAt(now)
	payload := events.NewAuctionUpdated(entity.ID(), status.String(), price.String(), now)
	if err := a.publisher.Publish(ctx, events.AuctionTopic(entity.ID()), payload); err != nil {
		slog.Warn("failed to publish auction update", "auction_id", entity.ID(), "error", err.Error())
	}
}
