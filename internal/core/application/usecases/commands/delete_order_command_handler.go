package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordermanager/internal/pkg/errs"
)

// DeleteOrderCommandHandler verifies the order exists and removes it.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("command", "delete_order"),
	}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "Order not found for deletion", "order_id", cmd.OrderID())
		}
		return err
	}

	o.MarkDeleted()
	if err = repo.Delete(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order deleted", "order_id", cmd.OrderID())
	return nil
}
