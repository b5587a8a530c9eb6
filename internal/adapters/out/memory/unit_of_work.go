package memory

import (
	"context"
	"errors"
	"log/slog"

	"ordermanager/internal/adapters/out/tracking"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
)

var (
	ErrNoActiveTransaction = errors.New("no active transaction")
	ErrReadOnlyTransaction = errors.New("cannot write in a read-only transaction")
)

type txMode int

const (
	txNone txMode = iota
	txReadOnly
	txReadWrite
)

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func NewUnitOfWorkFactory(store *Store, publisher ports.OrderEventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork implements ports.UnitOfWork for the in-memory Store.
type UnitOfWork struct {
	store     *Store
	publisher ports.OrderEventPublisher
	logger    *slog.Logger

	mode    txMode
	undo    []func()
	tracked tracking.Aggregates
}

// Begin takes the store's write lock until Commit or Rollback.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.mode != txNone {
		return nil
	}
	uow.store.mu.Lock()
	uow.mode = txReadWrite
	return nil
}

// BeginReadOnly takes the store's read lock until Commit or Rollback.
func (uow *UnitOfWork) BeginReadOnly(_ context.Context) error {
	if uow.mode != txNone {
		return nil
	}
	uow.store.mu.RLock()
	uow.mode = txReadOnly
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.mode == txNone {
		return ErrNoActiveTransaction
	}

	uow.undo = nil
	uow.release()
	uow.tracked.Publish(ctx, uow.publisher, uow.logger)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.mode == txNone {
		return ErrNoActiveTransaction
	}

	for i := len(uow.undo) - 1; i >= 0; i-- {
		uow.undo[i]()
	}
	uow.undo = nil
	uow.release()
	uow.tracked.Reset()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) release() {
	if uow.mode == txReadWrite {
		uow.store.mu.Unlock()
	} else {
		uow.store.mu.RUnlock()
	}
	uow.mode = txNone
}

// read runs fn under the store's read lock unless a transaction already holds a lock.
func (uow *UnitOfWork) read(fn func(s *Store) error) error {
	if uow.mode == txNone {
		uow.store.mu.RLock()
		defer uow.store.mu.RUnlock()
	}
	return fn(uow.store)
}

// write runs fn under the write lock. Inside a transaction the returned undo
// step is kept for Rollback; outside one the write is final.
func (uow *UnitOfWork) write(fn func(s *Store) (func(), error)) error {
	switch uow.mode {
	case txReadOnly:
		return ErrReadOnlyTransaction
	case txNone:
		uow.store.mu.Lock()
		defer uow.store.mu.Unlock()
		_, err := fn(uow.store)
		return err
	default:
		undo, err := fn(uow.store)
		if err == nil && undo != nil {
			uow.undo = append(uow.undo, undo)
		}
		return err
	}
}

func (uow *UnitOfWork) track(o *order.Order) {
	uow.tracked.Track(o)
}
