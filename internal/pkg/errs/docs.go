// Package errs provides the error taxonomy of the workflow engine.
// Every command and query returns one of these errors (possibly wrapped)
// so callers can classify failures with errors.Is and errors.As.
//
// The package includes:
//   - ObjectNotFoundError: a referenced id does not exist (NotFound)
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input
//     validation failures (ValidationError)
//   - InvalidTransitionError: a state precondition was not met
//   - IncompleteStepsError: an assignment was finished with unfinished steps
//   - ConcurrencyConflictError: reservation contention, safe to retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// IsNotFound, IsValidation and IsRetryable classify an error chain without
// callers having to know the concrete types.
package errs
