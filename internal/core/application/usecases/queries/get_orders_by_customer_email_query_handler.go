package queries

import (
	"context"

	"ordermanager/internal/core/ports"
)

type GetOrdersByCustomerEmailQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

func NewGetOrdersByCustomerEmailQueryHandler(uowFactory OrderReadUoWFactory) GetOrdersByCustomerEmailQueryHandler {
	return GetOrdersByCustomerEmailQueryHandler{uowFactory: uowFactory}
}

func (h GetOrdersByCustomerEmailQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerEmailQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return read(ctx, h.uowFactory, func(repo ports.OrderRepository) ([]OrderView, error) {
		orders, err := repo.FindByCustomerEmail(ctx, query.Email())
		if err != nil {
			return nil, err
		}
		return newOrderViews(orders), nil
	})
}
