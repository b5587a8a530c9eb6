package ports

import (
	"context"

	"ordermanager/internal/core/domain/model/order"
)

// OrderEventPublisher delivers committed order changes to interested parties.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.ChangedEvent) error
}
