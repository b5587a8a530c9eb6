package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// fieldMessages holds the messages reported per JSON field and failed tag.
var fieldMessages = map[string]map[string]string{
	"customerName": {
		"notblank": "Customer name is required",
		"min":      "Customer name must be between 2 and 100 characters",
		"max":      "Customer name must be between 2 and 100 characters",
	},
	"customerEmail": {
		"notblank": "Customer email is required",
		"email":    "Please provide a valid email address",
	},
	"productName": {
		"notblank": "Product name is required",
		"min":      "Product name must be between 1 and 200 characters",
		"max":      "Product name must be between 1 and 200 characters",
	},
	"quantity": {
		"required": "Quantity is required",
		"gte":      "Quantity must be at least 1",
		"lte":      "Quantity cannot exceed 1000",
	},
	"unitPrice": {
		"required": "Unit price is required",
		"gte":      "Unit price must be greater than 0",
		"lte":      "Unit price cannot exceed 999999.99",
	},
	"shippingAddress": {
		"notblank": "Shipping address is required",
		"min":      "Shipping address must be between 10 and 500 characters",
		"max":      "Shipping address must be between 10 and 500 characters",
	},
}

// RequestValidator plugs go-playground/validator into echo.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Text fields are measured as sent; notblank rejects values made only of whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &fieldValidationError{fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()][fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " failed on " + fe.Tag()
}

// fieldValidationError lists the rejected request fields by JSON name.
type fieldValidationError struct {
	fields map[string]string
}

func (e *fieldValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for field, msg := range e.fields {
		parts = append(parts, field+": "+msg)
	}
	return "request validation failed: " + strings.Join(parts, "; ")
}
