package kafka

import (
	"context"
	"log/slog"

	"ordermanager/internal/core/domain/model/order"
)

// LogPublisher stands in for the producer when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order_events")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "Order changed",
			"event_id", e.EventID,
			"type", string(e.Type),
			"order_id", e.OrderID,
			"status", string(e.Status),
			"previous_status", string(e.PreviousStatus),
		)
	}
	return nil
}
