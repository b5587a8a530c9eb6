package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"ordermanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(123))

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, int64(123), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 1500, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 1500, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is invalid: 1500 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerName")

	assert.Equal(t, "customerName", err.ParamName)
	assert.Equal(t, "value is required: customerName", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("customerName", errors.New("blank"))
	assert.Equal(t, "value is required: customerName (cause: blank)", withCause.Error())
}

func TestObjectNotModifiableError(t *testing.T) {
	err := errs.NewObjectNotModifiableError("order", int64(7), "order is DELIVERED")

	assert.Equal(t, "object is not modifiable: order 7, order is DELIVERED", err.Error())
	assert.Equal(t, errs.ErrObjectNotModifiable, err.Unwrap())
}

func TestStatusTransitionIsInvalidError(t *testing.T) {
	err := errs.NewStatusTransitionIsInvalidError("DELIVERED", "PENDING")

	assert.Equal(t, "status transition is invalid: DELIVERED -> PENDING", err.Error())
	assert.Equal(t, errs.ErrStatusTransitionIsInvalid, err.Unwrap())
}

func TestProcessingFailedError(t *testing.T) {
	err := errs.NewProcessingFailedErrorWithCause("publish order event", errors.New("broker down"))

	assert.Equal(t, "processing failed: publish order event (cause: broker down)", err.Error())
	assert.Equal(t, errs.ErrProcessingFailed, err.Unwrap())
}

func TestEnumValueIsInvalidError(t *testing.T) {
	err := errs.NewEnumValueIsInvalidError("OrderStatus", "NOT_A_STATUS", []string{"PENDING", "SHIPPED"})

	assert.Equal(t,
		"Invalid value 'NOT_A_STATUS' for type OrderStatus. Allowed values: PENDING, SHIPPED",
		err.Error())
	assert.Equal(t, errs.ErrEnumValueIsInvalid, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", errs.NewObjectNotFoundError("order", 1), errs.ErrObjectNotFound},
		{"invalid", errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000), errs.ErrValueIsOutOfRange},
		{"required", errs.NewValueIsRequiredError("productName"), errs.ErrValueIsRequired},
		{"not modifiable", errs.NewObjectNotModifiableError("order", 1, ""), errs.ErrObjectNotModifiable},
		{"transition", errs.NewStatusTransitionIsInvalidError("A", "B"), errs.ErrStatusTransitionIsInvalid},
		{"processing", errs.NewProcessingFailedError("x"), errs.ErrProcessingFailed},
		{"enum", errs.NewEnumValueIsInvalidError("T", "v", nil), errs.ErrEnumValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.sentinel)
		})
	}
}
