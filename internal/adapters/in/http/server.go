package http

import (
	"net/http"
	"time"

	"ordermanager/internal/core/application/usecases/commands"
	"ordermanager/internal/core/application/usecases/queries"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/paging"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage    = 0
	defaultSize    = 20
	defaultSortBy  = "createdAt"
	defaultSortDir = "desc"

	serviceName = "Order Management System"
)

// Server exposes the order use cases over HTTP.
// Handlers return errors and leave the response mapping to the error handler.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	listOrdersHandler           queries.ListOrdersQueryHandler
	listOrdersPageHandler       queries.ListOrdersPageQueryHandler
	getOrdersByEmailHandler     queries.GetOrdersByCustomerEmailQueryHandler
	getOrdersByStatusHandler    queries.GetOrdersByStatusQueryHandler
	getOrdersByDateRangeHandler queries.GetOrdersByDateRangeQueryHandler
	countOrdersByStatusHandler  queries.CountOrdersByStatusQueryHandler
}

// Handlers groups the use case handlers the server needs.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	ListOrders           queries.ListOrdersQueryHandler
	ListOrdersPage       queries.ListOrdersPageQueryHandler
	GetOrdersByEmail     queries.GetOrdersByCustomerEmailQueryHandler
	GetOrdersByStatus    queries.GetOrdersByStatusQueryHandler
	GetOrdersByDateRange queries.GetOrdersByDateRangeQueryHandler
	CountOrdersByStatus  queries.CountOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:          h.CreateOrder,
		updateOrderHandler:          h.UpdateOrder,
		updateOrderStatusHandler:    h.UpdateOrderStatus,
		deleteOrderHandler:          h.DeleteOrder,
		getOrderHandler:             h.GetOrder,
		listOrdersHandler:           h.ListOrders,
		listOrdersPageHandler:       h.ListOrdersPage,
		getOrdersByEmailHandler:     h.GetOrdersByEmail,
		getOrdersByStatusHandler:    h.GetOrdersByStatus,
		getOrdersByDateRangeHandler: h.GetOrdersByDateRange,
		countOrdersByStatusHandler:  h.CountOrdersByStatus,
	}
}

func bindOrderRequest(ctx echo.Context) (OrderRequest, error) {
	var req OrderRequest
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &req); err != nil {
		return OrderRequest{}, err
	}
	if err := ctx.Validate(&req); err != nil {
		return OrderRequest{}, err
	}
	return req, nil
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	req, err := bindOrderRequest(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.details(), req.Status)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, newOrderResponseFromOrder(created))
}

// GetOrders handles GET /orders - lists orders, paged unless page < 0 or size <= 0.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, err := queryInt(ctx, "page", defaultPage)
	if err != nil {
		return err
	}
	size, err := queryInt(ctx, "size", defaultSize)
	if err != nil {
		return err
	}

	if page < 0 || size <= 0 {
		orders, listErr := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
		if listErr != nil {
			return listErr
		}
		return ctx.JSON(http.StatusOK, newOrderResponses(orders))
	}

	query, err := queries.NewListOrdersPageQuery(
		page,
		size,
		queryString(ctx, "sortBy", defaultSortBy),
		paging.ParseDirection(queryString(ctx, "sortDir", defaultSortDir)),
	)
	if err != nil {
		return err
	}

	result, err := s.listOrdersPageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newOrdersPageResponse(result))
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(view))
}

// UpdateOrder handles PUT /orders/{id} - overwrites every mutable field.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		return err
	}

	req, err := bindOrderRequest(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.details(), req.Status)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newOrderResponseFromOrder(updated))
}

// UpdateOrderStatus handles PATCH /orders/{id}/status. The body is a bare
// JSON string such as "SHIPPED".
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		return err
	}

	var status order.Status
	if bindErr := (&echo.DefaultBinder{}).BindBody(ctx, &status); bindErr != nil {
		return bindErr
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return err
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newOrderResponseFromOrder(updated))
}

// DeleteOrder handles DELETE /orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathInt64(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handleErr
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersByCustomerEmail handles GET /orders/customer/{email}.
func (s *Server) GetOrdersByCustomerEmail(ctx echo.Context) error {
	email, err := pathString(ctx, "email")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersByCustomerEmailQuery(email)
	if err != nil {
		return err
	}

	orders, err := s.getOrdersByEmailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newOrderResponses(orders))
}

// GetOrdersByStatus handles GET /orders/status/{status}.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := pathStatus(ctx, "status")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return err
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newOrderResponses(orders))
}

// GetOrdersByDateRange handles GET /orders/date-range?startDate=&endDate=.
// Both bounds are inclusive.
func (s *Server) GetOrdersByDateRange(ctx echo.Context) error {
	start, err := queryDateTime(ctx, "startDate")
	if err != nil {
		return err
	}
	end, err := queryDateTime(ctx, "endDate")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersByDateRangeQuery(start, end)
	if err != nil {
		return err
	}

	orders, err := s.getOrdersByDateRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newOrderResponses(orders))
}

// CountOrdersByStatus handles GET /orders/count/status/{status}.
func (s *Server) CountOrdersByStatus(ctx echo.Context) error {
	status, err := pathStatus(ctx, "status")
	if err != nil {
		return err
	}

	query, err := queries.NewCountOrdersByStatusQuery(status)
	if err != nil {
		return err
	}

	resp, err := s.countOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, OrderCountResponse{Status: resp.Status, Count: resp.Count})
}

// Health handles GET /orders/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:    "UP",
		Service:   serviceName,
		Timestamp: time.Now().UTC(),
	})
}
