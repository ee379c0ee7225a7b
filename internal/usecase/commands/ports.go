package commands

import (
	"context"
	"time"

	"hothour/internal/domain/auction"
	"hothour/internal/domain/money"
	"hothour/internal/domain/notification"
	"hothour/internal/domain/reservation"
	"hothour/internal/domain/user"
	"hothour/internal/infra/db"
	"hothour/internal/usecase/queries"
)

// Write-side ports. The infra repositories satisfy these; commands never
// touch SQL directly.

type AuctionRepository interface {
	Create(ctx context.Context, a *auction.Auction) (int64, error)
	FindByID(ctx context.Context, id int64) (*auction.Auction, error)
	ListOpen(ctx context.Context) ([]*auction.Auction, error)
	UpdateDetails(ctx context.Context, id int64, title, description string, scheduledAt *time.Time, allowedGender auction.AllowedGender) error
	UpdateCurrentPrice(ctx context.Context, id int64, price money.Money) error
	UpdateStatus(ctx context.Context, id int64, status auction.Status) error
	ActivateTurbo(ctx context.Context, id int64, at time.Time) (bool, error)
	MarkSold(ctx context.Context, tx db.DBTX, id int64, finalPrice money.Money) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindByAuctionID(ctx context.Context, auctionID int64) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id int64, source reservation.CancelSource, at time.Time) error
	Complete(ctx context.Context, id int64) error
	ListPendingOverdue(ctx context.Context, now time.Time) ([]*reservation.Reservation, error)
	FindViewByID(ctx context.Context, id int64) (*queries.ReservationView, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	ListAdminIDs(ctx context.Context) ([]int64, error)
}

type NotificationRepository interface {
	CreateBatch(ctx context.Context, items []*notification.Notification) error
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	DeleteRead(ctx context.Context, userID int64) (int64, error)
}
