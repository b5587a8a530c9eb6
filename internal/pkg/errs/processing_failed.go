package errs

import (
	"errors"
	"fmt"
)

var ErrProcessingFailed = errors.New("processing failed")

// ProcessingFailedError reports a business operation that was understood but
// could not be carried out.
type ProcessingFailedError struct {
	Operation string
	Cause     error
}

func NewProcessingFailedError(operation string) *ProcessingFailedError {
	return &ProcessingFailedError{Operation: operation}
}

func NewProcessingFailedErrorWithCause(operation string, cause error) *ProcessingFailedError {
	return &ProcessingFailedError{Operation: operation, Cause: cause}
}

func (e *ProcessingFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrProcessingFailed, e.Operation), e.Cause)
}

func (e *ProcessingFailedError) Unwrap() error {
	return ErrProcessingFailed
}
