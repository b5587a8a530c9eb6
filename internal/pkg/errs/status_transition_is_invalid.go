package errs

import (
	"errors"
	"fmt"
)

var ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")

type StatusTransitionIsInvalidError struct {
	From  string
	To    string
	Cause error
}

func NewStatusTransitionIsInvalidError(from, to string) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{From: from, To: to}
}

func NewStatusTransitionIsInvalidErrorWithCause(from, to string, cause error) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{From: from, To: to, Cause: cause}
}

func (e *StatusTransitionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s -> %s", ErrStatusTransitionIsInvalid, e.From, e.To), e.Cause)
}

func (e *StatusTransitionIsInvalidError) Unwrap() error {
	return ErrStatusTransitionIsInvalid
}
