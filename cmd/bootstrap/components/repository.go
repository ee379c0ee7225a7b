package components

import (
	"hothour/internal/infra/repository"
	"hothour/internal/usecase/commands"
	"hothour/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewAuctionRepository,
		repository.NewReservationRepository,
		repository.NewUserRepository,
		repository.NewNotificationRepository,

		// Same implementations exposed through the write-side and
		// read-side ports.
		func(r *repository.AuctionRepository) commands.AuctionRepository { return r },
		func(r *repository.AuctionRepository) queries.AuctionReadRepo { return r },
		func(r *repository.ReservationRepository) commands.ReservationRepository { return r },
		func(r *repository.ReservationRepository) queries.ReservationViewRepo { return r },
		func(r *repository.UserRepository) commands.UserRepository { return r },
		func(r *repository.NotificationRepository) commands.NotificationRepository { return r },
		func(r *repository.NotificationRepository) queries.NotificationViewRepo { return r },
	),
)
