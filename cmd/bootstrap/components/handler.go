package components

import (
	"context"

	"hothour/internal/handler"
	"hothour/internal/handler/api"
	"hothour/internal/handler/middleware"
	"hothour/internal/handler/ws"
	"hothour/internal/infra/pubsub"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAuctionHandler,
		api.NewReservationHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		ws.NewHub,
		ws.NewHandler,
	),
	fx.Invoke(
		StartEventRelay,
		handler.NewRouter,
	),
)

// StartEventRelay runs the websocket hub and wires it to the Redis topics
// the core publishes on.
func StartEventRelay(lc fx.Lifecycle, hub *ws.Hub, sub *pubsub.RedisSubscriber) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			return ws.Relay(ctx, sub, hub, "auction:*", "user:*")
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
