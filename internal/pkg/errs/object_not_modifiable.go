package errs

import (
	"errors"
	"fmt"
)

var ErrObjectNotModifiable = errors.New("object is not modifiable")

// ObjectNotModifiableError reports an object whose current state forbids the
// requested change, e.g. a delivered order receiving a full update.
type ObjectNotModifiableError struct {
	ParamName string
	ID        any
	Reason    string
}

func NewObjectNotModifiableError(paramName string, id any, reason string) *ObjectNotModifiableError {
	return &ObjectNotModifiableError{
		ParamName: paramName,
		ID:        id,
		Reason:    reason,
	}
}

func (e *ObjectNotModifiableError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrObjectNotModifiable, e.ParamName, sanitize(e.ID))
	if e.Reason != "" {
		msg += ", " + e.Reason
	}
	return msg
}

func (e *ObjectNotModifiableError) Unwrap() error {
	return ErrObjectNotModifiable
}
