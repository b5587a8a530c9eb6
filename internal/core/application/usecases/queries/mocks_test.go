package queries_test

import (
	"context"
	"time"

	"ordermanager/internal/core/application/usecases/queries"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/paging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
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

type MockOrderReadUoW struct{ mock.Mock }

func (m *MockOrderReadUoW) BeginReadOnly(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderReadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderReadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderReadUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderReadUoWFactory struct{ mock.Mock }

func (m *MockOrderReadUoWFactory) Create() queries.OrderReadUoW {
	args := m.Called()
	return args.Get(0).(queries.OrderReadUoW)
}

// newReadFactory wires a factory whose unit of work completes successfully.
func newReadFactory(repo *MockOrderRepository) (*MockOrderReadUoWFactory, *MockOrderReadUoW) {
	uow := new(MockOrderReadUoW)
	uow.On("BeginReadOnly", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderReadUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

func storedOrder(id int64, status order.Status, email string) *order.Order {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute)
	o, err := order.RestoreOrder(id, order.Details{
		CustomerName:    "John Doe",
		CustomerEmail:   email,
		ProductName:     "Widget",
		Quantity:        2,
		UnitPrice:       decimal.RequireFromString("10.00"),
		ShippingAddress: "123 Main St City",
	}, status, created, created)
	if err != nil {
		panic(err)
	}
	return o
}
