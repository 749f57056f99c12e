package events

import (
	"context"
	"log/slog"

	"visit-booking/internal/usecase/shared"
)

type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(ctx context.Context, ev shared.ReservationEvent) error {
	s.logger.InfoContext(ctx, "reservation event",
		"type", string(ev.Type),
		"id", ev.ID,
		"uid", ev.UID,
		"visit_date", ev.VisitDate,
		"occurred_at", ev.OccurredAt)
	return nil
}
