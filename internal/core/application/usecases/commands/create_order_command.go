package commands

import (
	"errors"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order.
// A status of order.Unknown lets the order start as PENDING.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Details{
//	    CustomerName:    "John Doe",
//	    CustomerEmail:   "john@example.com",
//	    ProductName:     "Widget",
//	    Quantity:        2,
//	    UnitPrice:       decimal.RequireFromString("10.00"),
//	    ShippingAddress: "123 Main St City",
//	}, order.Unknown)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details
	status  order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Field bounds are enforced by the order aggregate; the command only rejects
// a status outside the lifecycle.
func NewCreateOrderCommand(details order.Details, status order.Status) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setStatus(status); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Status returns the requested initial status, order.Unknown when omitted.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}
