package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
	"ordermanager/internal/pkg/paging"
)

// OrderRepository implements ports.OrderRepository over a Store.
type OrderRepository struct {
	uow *UnitOfWork
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsNew() {
		return order.ErrOrderIDIsAssigned
	}

	err := r.uow.write(func(s *Store) (func(), error) {
		id := s.lastID + 1
		if err := aggregate.AssignID(id); err != nil {
			return nil, err
		}
		s.lastID = id
		s.rows[id] = newRow(aggregate)

		return func() { delete(s.rows, id) }, nil
	})
	if err != nil {
		return err
	}

	r.uow.track(aggregate)
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.uow.write(func(s *Store) (func(), error) {
		previous, ok := s.rows[aggregate.ID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("id", aggregate.ID())
		}

		updated := newRow(aggregate)
		updated.createdAt = previous.createdAt
		s.rows[aggregate.ID()] = updated

		return func() { s.rows[previous.id] = previous }, nil
	})
	if err != nil {
		return err
	}

	r.uow.track(aggregate)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.uow.write(func(s *Store) (func(), error) {
		previous, ok := s.rows[aggregate.ID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("id", aggregate.ID())
		}
		delete(s.rows, aggregate.ID())

		return func() { s.rows[previous.id] = previous }, nil
	})
	if err != nil {
		return err
	}

	r.uow.track(aggregate)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	var found *order.Order
	err := r.uow.read(func(s *Store) error {
		stored, ok := s.rows[id]
		if !ok {
			return errs.NewObjectNotFoundError("id", id)
		}

		o, err := stored.toDomain()
		found = o
		return err
	})
	return found, err
}

func (r *OrderRepository) Exists(_ context.Context, id int64) (bool, error) {
	var exists bool
	err := r.uow.read(func(s *Store) error {
		_, exists = s.rows[id]
		return nil
	})
	return exists, err
}

func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	return r.find(func(row) bool { return true })
}

func (r *OrderRepository) ListPage(_ context.Context, req paging.Request) (paging.Page[*order.Order], error) {
	compare, ok := rowComparators[req.SortBy]
	if !ok {
		return paging.Page[*order.Order]{}, errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("unsupported sort field '%s'", req.SortBy))
	}

	var rows []row
	_ = r.uow.read(func(s *Store) error {
		rows = snapshot(s, func(row) bool { return true })
		return nil
	})

	slices.SortStableFunc(rows, func(a, b row) int {
		c := compare(a, b)
		if req.Direction == paging.Desc {
			c = -c
		}
		if c == 0 {
			return cmp.Compare(a.id, b.id)
		}
		return c
	})

	total := int64(len(rows))
	start := int(min(req.Offset(), total))
	end := start + min(req.Size, len(rows)-start)

	orders, err := toDomainList(rows[start:end])
	if err != nil {
		return paging.Page[*order.Order]{}, err
	}
	return paging.NewPage(orders, req, total), nil
}

func (r *OrderRepository) FindByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(func(rw row) bool { return rw.status == status })
}

func (r *OrderRepository) FindByCustomerEmail(_ context.Context, email string) ([]*order.Order, error) {
	return r.find(func(rw row) bool { return strings.EqualFold(rw.details.CustomerEmail, email) })
}

func (r *OrderRepository) FindCreatedBetween(_ context.Context, start, end time.Time) ([]*order.Order, error) {
	lower := start.Add(-ports.CreatedBetweenPadding)
	upper := end.Add(ports.CreatedBetweenPadding)
	return r.find(func(rw row) bool {
		return rw.createdAt.After(lower) && rw.createdAt.Before(upper)
	})
}

func (r *OrderRepository) CountByStatus(_ context.Context, status order.Status) (int64, error) {
	var count int64
	err := r.uow.read(func(s *Store) error {
		for _, rw := range s.rows {
			if rw.status == status {
				count++
			}
		}
		return nil
	})
	return count, err
}

// find returns the matching orders by ascending id.
func (r *OrderRepository) find(match func(row) bool) ([]*order.Order, error) {
	var rows []row
	_ = r.uow.read(func(s *Store) error {
		rows = snapshot(s, match)
		return nil
	})

	slices.SortFunc(rows, func(a, b row) int { return cmp.Compare(a.id, b.id) })
	return toDomainList(rows)
}

func snapshot(s *Store, match func(row) bool) []row {
	rows := make([]row, 0, len(s.rows))
	for _, rw := range s.rows {
		if match(rw) {
			rows = append(rows, rw)
		}
	}
	return rows
}

func toDomainList(rows []row) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(rows))
	for _, rw := range rows {
		o, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// rowComparators holds one comparison per sortable field.
var rowComparators = map[string]func(a, b row) int{
	"id":            func(a, b row) int { return cmp.Compare(a.id, b.id) },
	"customerName":  func(a, b row) int { return strings.Compare(a.details.CustomerName, b.details.CustomerName) },
	"customerEmail": func(a, b row) int { return strings.Compare(a.details.CustomerEmail, b.details.CustomerEmail) },
	"productName":   func(a, b row) int { return strings.Compare(a.details.ProductName, b.details.ProductName) },
	"quantity":      func(a, b row) int { return cmp.Compare(a.details.Quantity, b.details.Quantity) },
	"unitPrice":     func(a, b row) int { return a.details.UnitPrice.Cmp(b.details.UnitPrice) },
	"totalAmount": func(a, b row) int {
		return order.CalculateTotal(a.details.UnitPrice, a.details.Quantity).
			Cmp(order.CalculateTotal(b.details.UnitPrice, b.details.Quantity))
	},
	"status":    func(a, b row) int { return strings.Compare(string(a.status), string(b.status)) },
	"createdAt": func(a, b row) int { return a.createdAt.Compare(b.createdAt) },
	"updatedAt": func(a, b row) int { return a.updatedAt.Compare(b.updatedAt) },
}
