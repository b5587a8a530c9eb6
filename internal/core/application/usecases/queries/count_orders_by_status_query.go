package queries

import (
	"errors"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts the orders currently in one status.
type CountOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery(status order.Status) (CountOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return CountOrdersByStatusQuery{}, err
	}
	return CountOrdersByStatusQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

func (q CountOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// CountOrdersByStatusQueryResponse pairs a status with its order count.
type CountOrdersByStatusQueryResponse struct {
	Status order.Status
	Count  int64
}
