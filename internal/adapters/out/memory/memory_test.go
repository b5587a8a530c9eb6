package memory_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ordermanager/internal/adapters/out/memory"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
	"ordermanager/internal/pkg/paging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func newFactory() (*memory.UnitOfWorkFactory, *recordingPublisher) {
	publisher := &recordingPublisher{}
	return memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, slog.New(slog.DiscardHandler)), publisher
}

func newOrder(t *testing.T, email string, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.Details{
		CustomerName:    "John Doe",
		CustomerEmail:   email,
		ProductName:     "Widget",
		Quantity:        2,
		UnitPrice:       decimal.RequireFromString("10.00"),
		ShippingAddress: "123 Main St City",
	}, status)
	require.NoError(t, err)
	o.PrepareForSave(createdAt)
	return o
}

func add(t *testing.T, factory ports.UnitOfWorkFactory, o *order.Order) {
	t.Helper()
	ctx := t.Context()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
}

func TestUnitOfWork_CommitStoresAndPublishes(t *testing.T) {
	ctx := t.Context()
	factory, publisher := newFactory()
	o := newOrder(t, "john@example.com", order.Unknown, time.Now())

	add(t, factory, o)

	assert.Equal(t, int64(1), o.ID())
	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.ChangeCreated, publisher.events[0].Type)

	stored, err := factory.Create().OrderRepository().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "20.00", stored.TotalAmount().StringFixed(2))
	assert.NotSame(t, o, stored)
}

func TestUnitOfWork_RollbackRestoresState(t *testing.T) {
	ctx := t.Context()
	factory, publisher := newFactory()
	existing := newOrder(t, "john@example.com", order.Unknown, time.Now())
	add(t, factory, existing)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	repo := uow.OrderRepository()

	require.NoError(t, repo.Add(ctx, newOrder(t, "new@example.com", order.Unknown, time.Now())))
	require.NoError(t, existing.ChangeStatus(order.Shipped, order.Permissive))
	require.NoError(t, repo.Update(ctx, existing))
	require.NoError(t, repo.Delete(ctx, existing))
	require.NoError(t, uow.Rollback(ctx))

	all, err := factory.Create().OrderRepository().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, order.Pending, all[0].Status())
	assert.Len(t, publisher.events, 1, "rolled back work is not published")

	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_ReadOnlyRejectsWrites(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory()

	uow := factory.Create()
	require.NoError(t, uow.BeginReadOnly(ctx))
	err := uow.OrderRepository().Add(ctx, newOrder(t, "john@example.com", order.Unknown, time.Now()))
	require.ErrorIs(t, err, memory.ErrReadOnlyTransaction)
	require.NoError(t, uow.Commit(ctx))
}

func TestOrderRepository_NotFound(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory()
	repo := factory.Create().OrderRepository()

	_, err := repo.Get(ctx, 5)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	ghost, err := order.RestoreOrder(5, newOrder(t, "a@example.com", order.Unknown, time.Now()).Details(),
		order.Pending, time.Now(), time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, repo.Update(ctx, ghost), errs.ErrObjectNotFound)
	require.ErrorIs(t, repo.Delete(ctx, ghost), errs.ErrObjectNotFound)

	exists, err := repo.Exists(ctx, 5)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOrderRepository_ListPage(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 15 {
		add(t, factory, newOrder(t, fmt.Sprintf("user%d@example.com", i), order.Unknown, base.Add(time.Duration(i)*time.Minute)))
	}
	repo := factory.Create().OrderRepository()

	req, err := paging.NewRequest(0, 5, "createdAt", paging.Desc)
	require.NoError(t, err)
	first, err := repo.ListPage(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalPages())
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	assert.Equal(t, int64(15), first.Items[0].ID())

	req, err = paging.NewRequest(2, 5, "id", paging.Asc)
	require.NoError(t, err)
	last, err := repo.ListPage(ctx, req)
	require.NoError(t, err)
	require.Len(t, last.Items, 5)
	assert.Equal(t, int64(11), last.Items[0].ID())
	assert.False(t, last.HasNext())
	assert.True(t, last.HasPrevious())

	req, err = paging.NewRequest(9, 5, "id", paging.Asc)
	require.NoError(t, err)
	beyond, err := repo.ListPage(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)

	_, err = repo.ListPage(ctx, paging.Request{Page: 0, Size: 5, SortBy: "secret"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderRepository_ListPage_LargeBounds(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		add(t, factory, newOrder(t, fmt.Sprintf("user%d@example.com", i), order.Unknown, base.Add(time.Duration(i)*time.Minute)))
	}
	repo := factory.Create().OrderRepository()

	req, err := paging.NewRequest(1, paging.MaxSize, "id", paging.Asc)
	require.NoError(t, err)
	page, err := repo.ListPage(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)

	req, err = paging.NewRequest(0, paging.MaxSize, "id", paging.Asc)
	require.NoError(t, err)
	page, err = repo.ListPage(ctx, req)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)

	req, err = paging.NewRequest(paging.MaxPage, 2, "id", paging.Asc)
	require.NoError(t, err)
	page, err = repo.ListPage(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestOrderRepository_Filters(t *testing.T) {
	ctx := t.Context()
	factory, _ := newFactory()
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	add(t, factory, newOrder(t, "John@Example.com", order.Pending, start.Add(-time.Hour)))
	add(t, factory, newOrder(t, "john@example.com", order.Shipped, start))
	add(t, factory, newOrder(t, "other@example.com", order.Shipped, end.Add(900*time.Millisecond)))
	add(t, factory, newOrder(t, "other@example.com", order.Cancelled, end.Add(time.Hour)))

	repo := factory.Create().OrderRepository()

	byEmail, err := repo.FindByCustomerEmail(ctx, "JOHN@example.COM")
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)

	byStatus, err := repo.FindByStatus(ctx, order.Shipped)
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	count, err := repo.CountByStatus(ctx, order.Cancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	inRange, err := repo.FindCreatedBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	assert.Equal(t, int64(2), inRange[0].ID())
	assert.Equal(t, int64(3), inRange[1].ID())
}
