package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/events"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Invoke(
		StartEventRelay,
	),
)

// StartEventRelay runs the outbox relay for the app's lifetime when brokers are configured.
// Without brokers, events stay in booking_events until a relay runs.
func StartEventRelay(lc fx.Lifecycle, cfg config.EventsConfig, uow shared.UnitOfWork, logger *slog.Logger) error {
	if !cfg.Enabled() {
		logger.Info("KAFKA_BROKERS not set, booking event relay disabled")
		return nil
	}

	publisher, err := events.NewKafkaPublisher(cfg)
	if err != nil {
		return err
	}
	relay := events.NewRelay(uow, publisher, cfg)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return publisher.Close()
		},
	})
	return nil
}
