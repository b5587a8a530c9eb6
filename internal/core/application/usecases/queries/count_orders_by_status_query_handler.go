package queries

import (
	"context"

	"ordermanager/internal/core/ports"
)

type CountOrdersByStatusQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

func NewCountOrdersByStatusQueryHandler(uowFactory OrderReadUoWFactory) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{uowFactory: uowFactory}
}

func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (CountOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountOrdersByStatusQueryResponse{}, err
	}

	return read(ctx, h.uowFactory, func(repo ports.OrderRepository) (CountOrdersByStatusQueryResponse, error) {
		count, err := repo.CountByStatus(ctx, query.Status())
		if err != nil {
			return CountOrdersByStatusQueryResponse{}, err
		}
		return CountOrdersByStatusQueryResponse{Status: query.Status(), Count: count}, nil
	})
}
