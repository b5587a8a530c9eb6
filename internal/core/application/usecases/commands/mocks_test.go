package commands_test

import (
	"context"
	"log/slog"
	"time"

	"ordermanager/internal/core/application/usecases/commands"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/paging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListPage(ctx context.Context, req paging.Request) (paging.Page[*order.Order], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(paging.Page[*order.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validDetails() order.Details {
	return order.Details{
		CustomerName:    "John Doe",
		CustomerEmail:   "john@example.com",
		ProductName:     "Widget",
		Quantity:        2,
		UnitPrice:       decimal.RequireFromString("10.00"),
		ShippingAddress: "123 Main St City",
	}
}

func storedOrder(id int64, status order.Status) *order.Order {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(id, validDetails(), status, created, created)
	if err != nil {
		panic(err)
	}
	return o
}
