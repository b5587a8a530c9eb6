package postgres_test

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	postgres_adapter "ordermanager/internal/adapters/out/postgres"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// recordingPublisher keeps every event it is asked to publish.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.ChangedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...order.ChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Events() []order.ChangedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]order.ChangedEvent(nil), p.events...)
}

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts PostgreSQL and opens it through postgres_adapter.Open,
// which also creates the application database and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("postgres"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(ctx, postgres_adapter.DBConfig{
		Host:            host,
		Port:            port.Port(),
		User:            "testuser",
		Password:        "testpass",
		Name:            "orders_test",
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}, slog.New(slog.DiscardHandler))
	suite.Require().NoError(err)
	suite.db = db
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
	suite.publisher = &recordingPublisher{}
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, slog.New(slog.DiscardHandler))
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOpen_IsIdempotent() {
	ctx := context.Background()
	host, err := suite.container.Host(ctx)
	suite.Require().NoError(err)
	port, err := suite.container.MappedPort(ctx, "5432/tcp")
	suite.Require().NoError(err)

	err = postgres_adapter.CreateDatabaseIfNotExists(ctx, postgres_adapter.DBConfig{
		Host: host, Port: port.Port(), User: "testuser", Password: "testpass",
		Name: "orders_test", SSLMode: "disable",
	}, slog.New(slog.DiscardHandler))
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitPublishesChanges verifies that committed aggregates
// are published with their storage identity.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPublishesChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(testOrder.ChangeStatus(order.Confirmed, order.Permissive))
	testOrder.PrepareForSave(time.Now())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))

	suite.Empty(suite.publisher.Events(), "Nothing is published before commit")
	suite.Require().NoError(uow.Commit(ctx))

	events := suite.publisher.Events()
	suite.Require().Len(events, 2)
	suite.Equal(order.ChangeCreated, events[0].Type)
	suite.Equal(order.ChangeStatusChanged, events[1].Type)
	suite.Equal(testOrder.ID(), events[0].OrderID)
	suite.Empty(testOrder.PendingChanges())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes and publishes nothing.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	_, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order should not exist after rollback")
	suite.Empty(suite.publisher.Events())
}

// TestUnitOfWork_ReadOnlyRejectsWrites verifies BeginReadOnly opens a read-only transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReadOnlyRejectsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.BeginReadOnly(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.OrderRepository().List(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, createTestOrder())
	suite.Require().Error(err)
	suite.True(strings.Contains(err.Error(), "read-only"), err.Error())
}

// TestUnitOfWork_RepositoryIsolation verifies that uncommitted work of one
// unit of work is invisible to another.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))

	_, err := uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
}

// createTestOrder creates a valid, stamped order for testing purposes.
func createTestOrder() *order.Order {
	testOrder, _ := order.NewOrder(order.Details{
		CustomerName:    "Jane Roe",
		CustomerEmail:   "jane@example.com",
		ProductName:     "Gadget",
		Quantity:        3,
		UnitPrice:       decimal.RequireFromString("4.50"),
		ShippingAddress: "42 Elm Street Springfield",
	}, order.Unknown)
	testOrder.PrepareForSave(time.Now())
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
