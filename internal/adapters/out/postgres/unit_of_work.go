// Package postgres provides the GORM-based implementation of the Unit of Work pattern
// and the start-up steps that prepare the PostgreSQL database.
//
// Usage Patterns:
//
// Write Transaction:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // publishes the changes recorded on o
//
// Read Transaction:
//
//	uow := factory.Create()
//	if err := uow.BeginReadOnly(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	orders, err := uow.OrderRepository().FindByStatus(ctx, order.Pending)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"ordermanager/internal/adapters/out/postgres/orderrepo"
	"ordermanager/internal/adapters/out/tracking"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// Changes of committed aggregates are sent to publisher.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, kafka.NewLogPublisher(logger), logger)
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Aggregates saved through its repository are
// published after a successful Commit and forgotten on Rollback.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	tracked   tracking.Aggregates
}

// Begin initiates a new read-write transaction.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	return uow.begin(ctx)
}

// BeginReadOnly initiates a transaction the database refuses to write in.
func (uow *GormUnitOfWork) BeginReadOnly(ctx context.Context) error {
	return uow.begin(ctx, &sql.TxOptions{ReadOnly: true})
}

func (uow *GormUnitOfWork) begin(ctx context.Context, opts ...*sql.TxOptions) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(opts...)
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction and then
// publishes the changes recorded on tracked aggregates.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked.Reset()
		return err
	}

	uow.tracked.Publish(ctx, uow.publisher, uow.logger)
	return nil
}

// Rollback discards all changes made within the current transaction.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked.Reset()
	return err
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Called by the repository after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	uow.tracked.Track(aggregate)
}
