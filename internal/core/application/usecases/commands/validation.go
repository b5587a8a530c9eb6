package commands

import (
	"fmt"

	"ordermanager/internal/pkg/errs"
)

func validateOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
