package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ordermanager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		title   string
		message string
	}{
		{
			name:    "unexpected error hides detail",
			err:     errors.New("pq: connection refused"),
			status:  http.StatusInternalServerError,
			title:   "Internal Server Error",
			message: internalErrorMessage,
		},
		{
			name:    "wrapped not found",
			err:     fmt.Errorf("get order: %w", errs.NewObjectNotFoundError("id", int64(9))),
			status:  http.StatusNotFound,
			title:   "Order Not Found",
			message: "Order not found with id: 9",
		},
		{
			name:   "not modifiable",
			err:    errs.NewObjectNotModifiableError("order", int64(1), "order is DELIVERED"),
			status: http.StatusConflict,
			title:  "Order Not Modifiable",
		},
		{
			name:   "transition",
			err:    errs.NewStatusTransitionIsInvalidError("DELIVERED", "PENDING"),
			status: http.StatusUnprocessableEntity,
			title:  "Invalid Order Status Transition",
		},
		{
			name:   "processing failed",
			err:    errs.NewProcessingFailedError("reserve stock"),
			status: http.StatusUnprocessableEntity,
			title:  "Order Processing Failed",
		},
		{
			name: "joined order data violations",
			err: errors.Join(
				errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("Quantity must be greater than 0")),
				errs.NewValueIsInvalidErrorWithCause("unitPrice", errors.New("Unit price must be greater than 0")),
			),
			status:  http.StatusBadRequest,
			title:   "Invalid Order Data",
			message: "Quantity must be greater than 0; Unit price must be greater than 0",
		},
		{
			name:    "request parameter",
			err:     errs.NewValueIsRequiredError("email"),
			status:  http.StatusBadRequest,
			title:   "Invalid Request",
			message: "value is required: email",
		},
		{
			name:    "unknown route",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			title:   "Not Found",
			message: "Not Found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mapError(tc.err)
			assert.Equal(t, tc.status, p.status)
			assert.Equal(t, tc.title, p.title)
			if tc.message != "" {
				assert.Equal(t, tc.message, p.message)
			}
		})
	}
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a; b", oneLine("a\nb"))
}
