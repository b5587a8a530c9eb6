package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/pkg/errs"
	"ordermanager/internal/pkg/paging"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and assigns the generated id to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsNew() {
		return order.ErrOrderIDIsAssigned
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves every column of an existing order except its creation time.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Delete removes an existing order.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, aggregate.ID())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("id", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListPage counts all orders and loads the requested slice. Ties on the sort
// column are broken by id so pages never overlap.
func (r *GormOrderRepository) ListPage(ctx context.Context, req paging.Request) (paging.Page[*order.Order], error) {
	column, ok := sortColumns[req.SortBy]
	if !ok {
		return paging.Page[*order.Order]{}, errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("unsupported sort field '%s'", req.SortBy))
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&total).Error; err != nil {
		return paging.Page[*order.Order]{}, err
	}

	if req.Offset() >= total {
		return paging.NewPage([]*order.Order{}, req, total), nil
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: req.Direction == paging.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Offset(int(req.Offset())).
		Limit(req.Size).
		Find(&dtos).Error
	if err != nil {
		return paging.Page[*order.Order]{}, err
	}

	orders, err := toDomainList(dtos)
	if err != nil {
		return paging.Page[*order.Order]{}, err
	}

	return paging.NewPage(orders, req, total), nil
}

func (r *GormOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("status = ?", string(status)))
}

func (r *GormOrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("LOWER(customer_email) = LOWER(?)", email))
}

func (r *GormOrderRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("created_at > ? AND created_at < ?",
		start.Add(-ports.CreatedBetweenPadding), end.Add(ports.CreatedBetweenPadding)))
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}
