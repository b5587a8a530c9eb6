package ports

import (
	"context"
	"time"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/paging"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listing methods return orders by ascending id unless a paging.Request says otherwise.
type OrderRepository interface {
	// Add persists a new order. Storage assigns the identity through order.AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Returns errs.ObjectNotFoundError when no row was affected.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an existing order.
	// Returns errs.ObjectNotFoundError when no row was affected.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Exists reports whether an order with the identifier is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// List retrieves every stored order.
	List(ctx context.Context) ([]*order.Order, error)

	// ListPage retrieves one page of orders sorted as requested.
	// An unsupported sort field yields errs.ValueIsInvalidError.
	ListPage(ctx context.Context, req paging.Request) (paging.Page[*order.Order], error)

	// FindByStatus retrieves the orders currently in status.
	FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// FindByCustomerEmail retrieves the orders whose customer email matches,
	// ignoring case.
	FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error)

	// FindCreatedBetween retrieves the orders created inside [start, end].
	// Both bounds are widened by one second to absorb sub-second timestamps.
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error)

	// CountByStatus returns how many orders are currently in status.
	CountByStatus(ctx context.Context, status order.Status) (int64, error)
}

// SortableFields lists the JSON field names a page may be sorted by.
func SortableFields() []string {
	return []string{
		"id", "customerName", "customerEmail", "productName", "quantity",
		"unitPrice", "totalAmount", "status", "createdAt", "updatedAt",
	}
}

// CreatedBetweenPadding widens both bounds of FindCreatedBetween.
const CreatedBetweenPadding = time.Second
