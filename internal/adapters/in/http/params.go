package http

import (
	"fmt"
	"time"

	"ordermanager/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// localDateTimeLayout is an ISO date-time without offset, read as UTC.
const localDateTimeLayout = "2006-01-02T15:04:05"

// parameterFormatError reports a path or query parameter of the wrong type.
type parameterFormatError struct {
	name  string
	value string
	cause error
}

func (e *parameterFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter '%s': '%s'", e.name, e.value)
}

func (e *parameterFormatError) Unwrap() error {
	return e.cause
}

type missingParameterError struct {
	name string
}

func (e *missingParameterError) Error() string {
	return fmt.Sprintf("Required parameter '%s' is missing", e.name)
}

type dateFormatError struct {
	name  string
	value string
	cause error
}

func (e *dateFormatError) Error() string {
	return fmt.Sprintf("invalid date for parameter '%s': '%s'", e.name, e.value)
}

func (e *dateFormatError) Unwrap() error {
	return e.cause
}

func pathInt64(ctx echo.Context, name string) (int64, error) {
	var v int64
	raw := ctx.Param(name)
	err := runtime.BindStyledParameterWithOptions("simple", name, raw, &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, &parameterFormatError{name: name, value: raw, cause: err}
	}
	return v, nil
}

func pathString(ctx echo.Context, name string) (string, error) {
	var v string
	raw := ctx.Param(name)
	err := runtime.BindStyledParameterWithOptions("simple", name, raw, &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", &parameterFormatError{name: name, value: raw, cause: err}
	}
	return v, nil
}

// pathStatus reads a status literal from the path. An unknown literal is a
// parameter format error.
func pathStatus(ctx echo.Context, name string) (order.Status, error) {
	raw, err := pathString(ctx, name)
	if err != nil {
		return order.Unknown, err
	}
	status, err := order.ParseStatus(raw)
	if err != nil {
		return order.Unknown, &parameterFormatError{name: name, value: raw, cause: err}
	}
	return status, nil
}

// queryInt reads an optional 32-bit integer query parameter, keeping def when
// absent. Values outside the int32 range are reported as a format error.
func queryInt(ctx echo.Context, name string, def int) (int, error) {
	var v *int32
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &v); err != nil {
		return 0, &parameterFormatError{name: name, value: ctx.QueryParam(name), cause: err}
	}
	if v == nil {
		return def, nil
	}
	return int(*v), nil
}

func queryString(ctx echo.Context, name, def string) string {
	if v := ctx.QueryParam(name); v != "" {
		return v
	}
	return def
}

// queryDateTime reads a required date-time. Both yyyy-MM-ddTHH:mm:ss (UTC)
// and RFC 3339 are accepted.
func queryDateTime(ctx echo.Context, name string) (time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return time.Time{}, &missingParameterError{name: name}
	}

	t, err := time.ParseInLocation(localDateTimeLayout, raw, time.UTC)
	if err == nil {
		return t, nil
	}
	t, rfcErr := time.Parse(time.RFC3339Nano, raw)
	if rfcErr != nil {
		return time.Time{}, &dateFormatError{name: name, value: raw, cause: err}
	}
	return t.UTC(), nil
}
