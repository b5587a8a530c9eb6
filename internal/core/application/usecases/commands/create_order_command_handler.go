package commands

import (
	"context"
	"log/slog"
	"time"

	"ordermanager/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The order is validated by the aggregate, stamped and stored in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("command", "create_order"),
		now:        time.Now,
	}
}

// Handle creates the order and returns it with its generated id, total and timestamps.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.Details(), cmd.Status())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o.PrepareForSave(h.now())
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order created",
		"order_id", o.ID(), "customer_email", o.CustomerEmail(), "total_amount", o.TotalAmount().StringFixed(2))
	return o, nil
}
