// Package memory provides an in-process implementation of the order
// persistence ports. It backs local runs without PostgreSQL and the HTTP
// scenario tests.
//
// A read-write unit of work holds the store's write lock from Begin until
// Commit or Rollback, so transactions are serialized. Rollback replays an
// undo log.
package memory

import (
	"sync"
	"time"

	"ordermanager/internal/core/domain/model/order"
)

// Store keeps order rows keyed by id.
type Store struct {
	mu     sync.RWMutex
	rows   map[int64]row
	lastID int64
}

// row is a detached copy of an order so callers never share state with the store.
type row struct {
	id        int64
	details   order.Details
	status    order.Status
	createdAt time.Time
	updatedAt time.Time
}

func NewStore() *Store {
	return &Store{rows: make(map[int64]row)}
}

func newRow(o *order.Order) row {
	return row{
		id:        o.ID(),
		details:   o.Details(),
		status:    o.Status(),
		createdAt: o.CreatedAt(),
		updatedAt: o.UpdatedAt(),
	}
}

func (r row) toDomain() (*order.Order, error) {
	return order.RestoreOrder(r.id, r.details, r.status, r.createdAt, r.updatedAt)
}
