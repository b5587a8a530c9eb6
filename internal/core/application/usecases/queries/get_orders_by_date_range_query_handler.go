package queries

import (
	"context"

	"ordermanager/internal/core/ports"
)

type GetOrdersByDateRangeQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

func NewGetOrdersByDateRangeQueryHandler(uowFactory OrderReadUoWFactory) GetOrdersByDateRangeQueryHandler {
	return GetOrdersByDateRangeQueryHandler{uowFactory: uowFactory}
}

// Handle returns the orders created between the bounds, both included.
func (h GetOrdersByDateRangeQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDateRangeQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(repo ports.OrderRepository) ([]OrderView, error) {
		orders, err := repo.FindCreatedBetween(ctx, query.Start(), query.End())
		if err != nil {
			return nil, err
		}
		return newOrderViews(orders), nil
	})
}
