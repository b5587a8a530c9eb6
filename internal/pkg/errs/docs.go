// Package errs provides standardized error types for the order manager.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectNotModifiableError: For when an object is in a state that forbids changes
//   - StatusTransitionIsInvalidError: For when a lifecycle transition is rejected
//   - ProcessingFailedError: For when a business operation cannot be completed
//   - EnumValueIsInvalidError: For when a literal is not one of the allowed values
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP layer classifies errors with errors.Is against the sentinels, so
// every layer can wrap freely with fmt.Errorf("...: %w", err).
package errs
