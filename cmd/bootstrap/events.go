package bootstrap

import (
	"context"
	"log/slog"

	"visit-booking/internal/infra/events"
	"visit-booking/internal/pkg/config"
	"visit-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*events.Dispatcher, error) {
	sinks := []events.Sink{events.NewLogSink(logger)}

	var closeRedis func() error
	if cfg.Events.RedisURL != "" {
		client, err := events.NewRedisClient(cfg.Events.RedisURL)
		if err != nil {
			return nil, err
		}
		closeRedis = client.Close
		sinks = append(sinks, events.NewRedisSink(client, cfg.Events.Channel))
		logger.Info("redis event sink enabled", "channel", cfg.Events.Channel)
	}

	d := events.NewDispatcher(logger, cfg.Events.BufferSize, sinks...)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			err := d.Close(ctx)
			if closeRedis != nil {
				if cerr := closeRedis(); cerr != nil {
					logger.Warn("failed to close redis client", "error", cerr)
				}
			}
			return err
		},
	})
	return d, nil
}
