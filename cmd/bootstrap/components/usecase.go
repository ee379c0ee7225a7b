package components

import (
	"hothour/internal/pkg/clock"
	"hothour/internal/pkg/config"
	"hothour/internal/usecase"
	"hothour/internal/usecase/commands"
	"hothour/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.AuctionConfig { return cfg.Auction },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAuctionCommands,
		commands.NewBookingCommands,
		commands.NewCancellationCommands,
		commands.NewNotificationCommands,
		commands.NewReconcileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAuctionQueries,
		queries.NewReservationQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
