package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks the aggregates touched by the
// transaction so their changes can be published once it commits.
type UnitOfWork interface {
	// Begin starts a read-write transaction.
	Begin(ctx context.Context) error

	// BeginReadOnly starts a transaction that may only read.
	BeginReadOnly(ctx context.Context) error

	// Commit commits the current transaction and publishes the pending
	// changes of every tracked aggregate.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and forgets tracked aggregates.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	OrderRepository() OrderRepository
}
