package commands

import (
	"errors"

	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand overwrites every mutable field of an existing order.
// A status of order.Unknown keeps the stored status.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	details order.Details
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the identifier and the optional status.
func NewUpdateOrderCommand(orderID int64, details order.Details, status order.Status) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommand) Details() order.Details {
	return c.details
}

func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}
