package calendar

import (
	"context"
	"log/slog"

	"range-booking/internal/pkg/config"
	"range-booking/internal/pkg/errs"
)

// Publisher delivers one event to the calendar integration.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// NewPublisher picks the transport named in cfg. "none" yields nil, which
// disables calendar sync.
func NewPublisher(cfg config.CalendarConfig, logger *slog.Logger) (Publisher, error) {
	switch cfg.Transport {
	case "kafka":
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	case "rabbitmq":
		return NewRabbitPublisher(cfg.RabbitURL, cfg.RabbitExchange)
	case "log", "":
		return NewLogPublisher(logger), nil
	case "none":
		return nil, nil
	default:
		return nil, errs.Newf("unsupported calendar transport %q", cfg.Transport)
	}
}

// LogPublisher writes events to the application log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, ev Event) error {
	p.logger.InfoContext(ctx, "calendar event",
		slog.String("event_id", ev.EventID.String()),
		slog.String("action", ev.Action),
		slog.String("request_code", ev.RequestCode),
		slog.String("status", ev.Status),
		slog.Time("start", ev.Start),
		slog.Time("end", ev.End),
		slog.String("related_request_code", ev.RelatedRequestCode))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
