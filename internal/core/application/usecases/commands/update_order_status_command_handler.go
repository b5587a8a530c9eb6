package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler changes only the status of an order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
	logger     *slog.Logger
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		logger:     logger.With("command", "update_order_status"),
		now:        time.Now,
	}
}

// Handle loads the order and moves it to the requested status.
// Returns errs.ObjectNotFoundError when the order does not exist and
// errs.StatusTransitionIsInvalidError when the policy rejects the change.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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
			h.logger.WarnContext(ctx, "Order not found for status update", "order_id", cmd.OrderID())
		}
		return nil, err
	}

	previous := o.Status()
	if err = o.ChangeStatus(cmd.Status(), h.policy); err != nil {
		return nil, err
	}

	o.PrepareForSave(h.now())
	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", o.ID(), "from", previous.String(), "to", o.Status().String())
	return o, nil
}
