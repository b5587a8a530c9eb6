package queries

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
	"ordermanager/internal/pkg/guard"
	"ordermanager/internal/pkg/paging"
)

var ErrListOrdersPageQueryIsNotConstructed = errors.New(
	"ListOrdersPageQuery must be created via NewListOrdersPageQuery constructor",
)

// DefaultSortField is used when a page request names no sort field.
const DefaultSortField = "createdAt"

// ListOrdersPageQuery retrieves one sorted page of orders.
//
// Example:
//
//	query, err := NewListOrdersPageQuery(0, 20, "createdAt", paging.Desc)
type ListOrdersPageQuery struct {
	request paging.Request

	guard guard.ConstructorGuard
}

// NewListOrdersPageQuery validates page, size and the sort field.
// The sort field must be one of ports.SortableFields.
func NewListOrdersPageQuery(page, size int, sortBy string, direction paging.Direction) (ListOrdersPageQuery, error) {
	if sortBy == "" {
		sortBy = DefaultSortField
	}

	var sortErr error
	if !slices.Contains(ports.SortableFields(), sortBy) {
		sortErr = errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("unsupported sort field '%s', allowed: %s", sortBy, strings.Join(ports.SortableFields(), ", ")))
	}

	req, reqErr := paging.NewRequest(page, size, sortBy, direction)
	if err := errors.Join(reqErr, sortErr); err != nil {
		return ListOrdersPageQuery{}, err
	}

	return ListOrdersPageQuery{request: req, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersPageQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersPageQueryIsNotConstructed)
}

func (q ListOrdersPageQuery) Request() paging.Request {
	return q.request
}
