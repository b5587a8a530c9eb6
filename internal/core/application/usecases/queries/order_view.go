package queries

import (
	"time"

	"ordermanager/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is the read representation of an order.
type OrderView struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	ProductName     string
	Quantity        int
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          order.Status
	ShippingAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrderView copies the state of o.
func NewOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:              o.ID(),
		CustomerName:    o.CustomerName(),
		CustomerEmail:   o.CustomerEmail(),
		ProductName:     o.ProductName(),
		Quantity:        o.Quantity(),
		UnitPrice:       o.UnitPrice(),
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status(),
		ShippingAddress: o.ShippingAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}
