// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordermanager/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are stamped by the aggregate, so GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CustomerName    string          `gorm:"size:100;not null"`
	CustomerEmail   string          `gorm:"size:255;not null;index"`
	ProductName     string          `gorm:"size:200;not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"size:20;not null;index"`
	ShippingAddress string          `gorm:"size:500;not null"`
	CreatedAt       time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// sortColumns maps the sortable JSON field names to their columns.
var sortColumns = map[string]string{
	"id":            "id",
	"customerName":  "customer_name",
	"customerEmail": "customer_email",
	"productName":   "product_name",
	"quantity":      "quantity",
	"unitPrice":     "unit_price",
	"totalAmount":   "total_amount",
	"status":        "status",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID(),
		CustomerName:    o.CustomerName(),
		CustomerEmail:   o.CustomerEmail(),
		ProductName:     o.ProductName(),
		Quantity:        o.Quantity(),
		UnitPrice:       o.UnitPrice(),
		TotalAmount:     o.TotalAmount(),
		Status:          string(o.Status()),
		ShippingAddress: o.ShippingAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, which re-validates every field.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		order.Details{
			CustomerName:    dto.CustomerName,
			CustomerEmail:   dto.CustomerEmail,
			ProductName:     dto.ProductName,
			Quantity:        dto.Quantity,
			UnitPrice:       dto.UnitPrice,
			ShippingAddress: dto.ShippingAddress,
		},
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
