package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ordermanager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

// orderFields are the request fields whose violations are reported as
// "Invalid Order Data".
var orderFields = map[string]bool{
	"customerName":    true,
	"customerEmail":   true,
	"productName":     true,
	"quantity":        true,
	"unitPrice":       true,
	"shippingAddress": true,
}

// problem is the outcome of mapping an error.
type problem struct {
	status      int
	title       string
	message     string
	fieldErrors map[string]string
}

// NewErrorHandler returns the echo.HTTPErrorHandler that turns every error
// into an ErrorResponse.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		p := mapError(err)
		ctx := c.Request().Context()
		if p.status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "Unexpected error occurred", "path", c.Request().URL.Path, "error", err)
		} else {
			logger.WarnContext(ctx, p.title, "path", c.Request().URL.Path, "error", err)
		}

		body := ErrorResponse{
			Timestamp:   time.Now().UTC(),
			Status:      p.status,
			Error:       p.title,
			Message:     oneLine(p.message),
			Path:        c.Request().URL.Path,
			FieldErrors: p.fieldErrors,
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(p.status)
		} else {
			writeErr = c.JSON(p.status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx, "Failed to write error response", "error", writeErr)
		}
	}
}

func mapError(err error) problem {
	var (
		fieldErr   *fieldValidationError
		paramErr   *parameterFormatError
		missingErr *missingParameterError
		dateErr    *dateFormatError
		notFound   *errs.ObjectNotFoundError
		enumErr    *errs.EnumValueIsInvalidError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &fieldErr):
		return problem{
			status:      http.StatusBadRequest,
			title:       "Validation Failed",
			message:     "Request validation failed. Check the field errors for details.",
			fieldErrors: fieldErr.fields,
		}
	case errors.As(err, &paramErr):
		return problem{http.StatusBadRequest, "Invalid Parameter Format", paramErr.Error(), nil}
	case errors.As(err, &missingErr):
		return problem{http.StatusBadRequest, "Missing Required Parameter", missingErr.Error(), nil}
	case errors.As(err, &dateErr):
		return problem{
			http.StatusBadRequest, "Invalid Date Format",
			"Invalid date format. Please use ISO format (yyyy-MM-ddTHH:mm:ss)", nil,
		}
	case errors.As(err, &notFound):
		return problem{http.StatusNotFound, "Order Not Found", fmt.Sprintf("Order not found with id: %v", notFound.ID), nil}
	case errors.Is(err, errs.ErrObjectNotModifiable):
		return problem{http.StatusConflict, "Order Not Modifiable", err.Error(), nil}
	case errors.Is(err, errs.ErrStatusTransitionIsInvalid):
		return problem{http.StatusUnprocessableEntity, "Invalid Order Status Transition", err.Error(), nil}
	case errors.Is(err, errs.ErrProcessingFailed):
		return problem{http.StatusUnprocessableEntity, "Order Processing Failed", err.Error(), nil}
	case errors.As(err, &enumErr):
		return problem{http.StatusBadRequest, "Malformed JSON", enumErr.Error(), nil}
	case isValueError(err):
		return valueProblem(err)
	case errors.As(err, &httpErr):
		return httpProblem(httpErr)
	default:
		return problem{http.StatusInternalServerError, "Internal Server Error", internalErrorMessage, nil}
	}
}

func isValueError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// valueProblem reports every value violation carried by err, which may be a
// joined error.
func valueProblem(err error) problem {
	var messages []string
	orderData := false

	for _, leaf := range leaves(err) {
		param, msg := describeValueError(leaf)
		if orderFields[param] {
			orderData = true
		}
		messages = append(messages, msg)
	}

	title := "Invalid Request"
	if orderData {
		title = "Invalid Order Data"
	}
	return problem{http.StatusBadRequest, title, strings.Join(messages, "; "), nil}
}

func leaves(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, leaves(e)...)
		}
		return out
	}
	return []error{err}
}

// describeValueError prefers the human cause of a value error over its
// technical message.
func describeValueError(err error) (string, string) {
	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
	)

	switch {
	case errors.As(err, &required):
		return required.ParamName, causeOr(required.Cause, err)
	case errors.As(err, &invalid):
		return invalid.ParamName, causeOr(invalid.Cause, err)
	case errors.As(err, &outOfRange):
		return outOfRange.ParamName, causeOr(outOfRange.Cause, err)
	default:
		return "", err.Error()
	}
}

func causeOr(cause, err error) string {
	if cause != nil {
		return cause.Error()
	}
	return err.Error()
}

// httpProblem maps errors raised by echo itself, such as unknown routes or a
// body that is not valid JSON.
func httpProblem(he *echo.HTTPError) problem {
	if he.Code == http.StatusBadRequest && he.Internal != nil {
		return problem{http.StatusBadRequest, "Malformed JSON", "Request body is not readable or is malformed JSON", nil}
	}

	msg := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		msg = m
	}
	if he.Code >= http.StatusInternalServerError {
		return problem{he.Code, "Internal Server Error", internalErrorMessage, nil}
	}
	return problem{he.Code, http.StatusText(he.Code), msg, nil}
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", "; ")
}
