package queries

import (
	"context"

	"ordermanager/internal/core/ports"
)

type ListOrdersQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

func NewListOrdersQueryHandler(uowFactory OrderReadUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns all orders by ascending id. The result is never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(repo ports.OrderRepository) ([]OrderView, error) {
		orders, err := repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return newOrderViews(orders), nil
	})
}
