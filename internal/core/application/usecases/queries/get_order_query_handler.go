package queries

import (
	"context"
	"errors"
	"log/slog"

	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
)

// GetOrderQueryHandler loads one order.
type GetOrderQueryHandler struct {
	uowFactory OrderReadUoWFactory
	logger     *slog.Logger
}

func NewGetOrderQueryHandler(uowFactory OrderReadUoWFactory, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		uowFactory: uowFactory,
		logger:     logger.With("query", "get_order"),
	}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	view, err := read(ctx, h.uowFactory, func(repo ports.OrderRepository) (OrderView, error) {
		o, err := repo.Get(ctx, query.OrderID())
		if err != nil {
			return OrderView{}, err
		}
		return NewOrderView(o), nil
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "Order not found", "order_id", query.OrderID())
	}
	return view, err
}
