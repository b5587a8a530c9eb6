// Package queries contains read-only operations over orders.
// Every handler reads inside a read-only transaction and returns views, never aggregates.
package queries

import (
	"context"

	"ordermanager/internal/core/ports"
)

type (
	// ReadOnlyTxManager opens transactions that may only read.
	ReadOnlyTxManager interface {
		BeginReadOnly(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderReadUoW gives read access to orders inside one transaction.
	OrderReadUoW interface {
		ReadOnlyTxManager
		OrderRepository() ports.OrderRepository
	}

	// OrderReadUoWFactory creates new read-only unit of work instances.
	OrderReadUoWFactory interface {
		Create() OrderReadUoW
	}
)

// read runs fn inside a read-only transaction.
func read[T any](ctx context.Context, factory OrderReadUoWFactory, fn func(repo ports.OrderRepository) (T, error)) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.BeginReadOnly(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, err := fn(uow.OrderRepository())
	if err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return result, nil
}
