package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/errs"
)

// UpdateOrderCommandHandler replaces the details of an order. Whether a
// completed order may still be changed is decided by the transition policy.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
	logger     *slog.Logger
	now        func() time.Time
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		logger:     logger.With("command", "update_order"),
		now:        time.Now,
	}
}

// Handle loads the order, applies the new details and stores it.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "Order not found for update", "order_id", cmd.OrderID())
		}
		return nil, err
	}

	if err = o.Update(cmd.Details(), cmd.Status(), h.policy); err != nil {
		return nil, err
	}

	o.PrepareForSave(h.now())
	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order updated", "order_id", o.ID(), "status", o.Status().String())
	return o, nil
}
