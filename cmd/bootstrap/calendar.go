package bootstrap

import (
	"context"
	"log/slog"

	"range-booking/internal/infra/calendar"
	"range-booking/internal/pkg/config"
	"range-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarNotifier,
	),
)

// NewCalendarNotifier returns nil when calendar sync is disabled; the
// booking commands fall back to a no-op notifier.
func NewCalendarNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.CalendarNotifier, error) {
	publisher, err := calendar.NewPublisher(cfg.Calendar, logger)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		logger.Info("calendar sync disabled")
		return nil, nil
	}

	dispatcher := calendar.NewDispatcher(publisher, cfg.Calendar.QueueSize, cfg.Calendar.PublishTimeout, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: dispatcher.Stop,
	})
	return dispatcher, nil
}
