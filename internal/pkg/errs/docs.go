// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of error types:
//   - Value errors: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//     and ObjectNotFoundError for missing or malformed input
//   - Lifecycle errors: StatusError, CapacityError, BelongError, RangeError,
//     RemainingDeliveriesError and AddressResolutionError for trip planning and
//     trip state transitions
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels and read
// details with errors.As against the struct types.
package errs
