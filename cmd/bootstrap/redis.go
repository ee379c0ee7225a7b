package bootstrap

import (
	"context"

	"hothour/internal/events"
	"hothour/internal/infra/pubsub"
	"hothour/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		pubsub.NewRedisSubscriber,
		fx.Annotate(
			pubsub.NewRedisPublisher,
			fx.As(new(events.Publisher)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := pubsub.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
