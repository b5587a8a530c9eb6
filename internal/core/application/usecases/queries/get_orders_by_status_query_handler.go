package queries

import (
	"context"

	"ordermanager/internal/core/ports"
)

type GetOrdersByStatusQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

func NewGetOrdersByStatusQueryHandler(uowFactory OrderReadUoWFactory) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{uowFactory: uowFactory}
}

func (h GetOrdersByStatusQueryHandler) Handle(ctx context.Context, query GetOrdersByStatusQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(repo ports.OrderRepository) ([]OrderView, error) {
		orders, err := repo.FindByStatus(ctx, query.Status())
		if err != nil {
			return nil, err
		}
		return newOrderViews(orders), nil
	})
}
