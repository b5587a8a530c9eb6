package queries

import (
	"errors"
	"fmt"
	"time"

	"ordermanager/internal/pkg/errs"
	"ordermanager/internal/pkg/guard"
)

var ErrGetOrdersByDateRangeQueryIsNotConstructed = errors.New(
	"GetOrdersByDateRangeQuery must be created via NewGetOrdersByDateRangeQuery constructor",
)

// GetOrdersByDateRangeQuery finds orders created inside an inclusive window.
type GetOrdersByDateRangeQuery struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByDateRangeQuery requires both bounds and start not after end.
func NewGetOrdersByDateRangeQuery(start, end time.Time) (GetOrdersByDateRangeQuery, error) {
	var err error
	if start.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("startDate"))
	}
	if end.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("endDate"))
	}
	if err != nil {
		return GetOrdersByDateRangeQuery{}, err
	}

	if start.After(end) {
		return GetOrdersByDateRangeQuery{}, errs.NewValueIsInvalidErrorWithCause("startDate",
			fmt.Errorf("start date %s is after end date %s",
				start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	return GetOrdersByDateRangeQuery{
		start: start.UTC(),
		end:   end.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDateRangeQueryIsNotConstructed)
}

func (q GetOrdersByDateRangeQuery) Start() time.Time {
	return q.start
}

func (q GetOrdersByDateRangeQuery) End() time.Time {
	return q.end
}
