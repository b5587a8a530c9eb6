// Package tracking keeps the order aggregates touched by a unit of work and
// publishes their recorded changes once the work is committed.
package tracking

import (
	"context"
	"log/slog"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
)

// Aggregates is not safe for concurrent use; a unit of work belongs to one request.
type Aggregates struct {
	items []*order.Order
}

// Track registers o once, however often it is saved.
func (a *Aggregates) Track(o *order.Order) {
	for _, tracked := range a.items {
		if tracked == o {
			return
		}
	}
	a.items = append(a.items, o)
}

func (a *Aggregates) Len() int {
	return len(a.items)
}

// Reset forgets every tracked aggregate and its pending changes.
func (a *Aggregates) Reset() {
	for _, o := range a.items {
		o.ClearChanges()
	}
	a.items = nil
}

// Publish sends the pending changes of every tracked aggregate and resets the set.
// A failed publication is logged and does not fail the committed work.
func (a *Aggregates) Publish(ctx context.Context, publisher ports.OrderEventPublisher, logger *slog.Logger) {
	defer a.Reset()

	var events []order.ChangedEvent
	for _, o := range a.items {
		events = append(events, order.ChangedEvents(o)...)
	}
	if len(events) == 0 || publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, events...); err != nil {
		logger.ErrorContext(ctx, "Failed to publish order changes",
			"events", len(events), "error", err)
	}
}
