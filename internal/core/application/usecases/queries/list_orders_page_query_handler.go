package queries

import (
	"context"

	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/paging"
)

type ListOrdersPageQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

func NewListOrdersPageQueryHandler(uowFactory OrderReadUoWFactory) ListOrdersPageQueryHandler {
	return ListOrdersPageQueryHandler{uowFactory: uowFactory}
}

// Handle returns the requested page together with the total number of orders.
func (h ListOrdersPageQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersPageQuery,
) (paging.Page[OrderView], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[OrderView]{}, err
	}

	return read(ctx, h.uowFactory, func(repo ports.OrderRepository) (paging.Page[OrderView], error) {
		page, err := repo.ListPage(ctx, query.Request())
		if err != nil {
			return paging.Page[OrderView]{}, err
		}
		return paging.Map(page, NewOrderView), nil
	})
}
