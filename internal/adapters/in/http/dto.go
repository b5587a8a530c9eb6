package http

import (
	"encoding/json"
	"time"

	"ordermanager/internal/core/application/usecases/queries"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/paging"

	"github.com/shopspring/decimal"
)

// OrderRequest is the body of POST /orders and PUT /orders/{id}. Quantity and
// UnitPrice are pointers so a missing value is told apart from zero.
type OrderRequest struct {
	CustomerName    string           `json:"customerName"    validate:"notblank,min=2,max=100"`
	CustomerEmail   string           `json:"customerEmail"   validate:"notblank,email"`
	ProductName     string           `json:"productName"     validate:"notblank,min=1,max=200"`
	Quantity        *int             `json:"quantity"        validate:"required,gte=1,lte=1000"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"       validate:"required,gte=0.01,lte=999999.99"`
	Status          order.Status     `json:"status"`
	ShippingAddress string           `json:"shippingAddress" validate:"notblank,min=10,max=500"`
}

func (r OrderRequest) details() order.Details {
	d := order.Details{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		ProductName:     r.ProductName,
		ShippingAddress: r.ShippingAddress,
	}
	if r.Quantity != nil {
		d.Quantity = *r.Quantity
	}
	if r.UnitPrice != nil {
		d.UnitPrice = *r.UnitPrice
	}
	return d
}

// OrderResponse is the JSON form of an order. Money is rendered as a JSON
// number with two decimals.
type OrderResponse struct {
	ID              int64        `json:"id"`
	CustomerName    string       `json:"customerName"`
	CustomerEmail   string       `json:"customerEmail"`
	ProductName     string       `json:"productName"`
	Quantity        int          `json:"quantity"`
	UnitPrice       json.Number  `json:"unitPrice"`
	TotalAmount     json.Number  `json:"totalAmount"`
	Status          order.Status `json:"status"`
	ShippingAddress string       `json:"shippingAddress"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func newOrderResponse(v queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:              v.ID,
		CustomerName:    v.CustomerName,
		CustomerEmail:   v.CustomerEmail,
		ProductName:     v.ProductName,
		Quantity:        v.Quantity,
		UnitPrice:       money(v.UnitPrice),
		TotalAmount:     money(v.TotalAmount),
		Status:          v.Status,
		ShippingAddress: v.ShippingAddress,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func newOrderResponseFromOrder(o *order.Order) OrderResponse {
	return newOrderResponse(queries.NewOrderView(o))
}

func newOrderResponses(views []queries.OrderView) []OrderResponse {
	response := make([]OrderResponse, len(views))
	for i, v := range views {
		response[i] = newOrderResponse(v)
	}
	return response
}

// OrdersPageResponse is the page envelope of GET /orders.
type OrdersPageResponse struct {
	Orders      []OrderResponse `json:"orders"`
	CurrentPage int             `json:"currentPage"`
	TotalItems  int64           `json:"totalItems"`
	TotalPages  int             `json:"totalPages"`
	PageSize    int             `json:"pageSize"`
	HasNext     bool            `json:"hasNext"`
	HasPrevious bool            `json:"hasPrevious"`
}

func newOrdersPageResponse(p paging.Page[queries.OrderView]) OrdersPageResponse {
	return OrdersPageResponse{
		Orders:      newOrderResponses(p.Items),
		CurrentPage: p.Number,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages(),
		PageSize:    p.Size,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}

type OrderCountResponse struct {
	Status order.Status `json:"status"`
	Count  int64        `json:"count"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Timestamp   time.Time         `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	Path        string            `json:"path"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}
