// Package errs provides standardized error types for the routing service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common validation scenarios and for
// the two failure kinds of an action resolution:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value exceeds its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - NoRouteFoundError: No Action applies to a route at a position
//   - RemoteLookupFailedError: A LocationGroup link could not be resolved
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrNoRouteFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// NoRouteFound is a business miss the caller can recover from (hold the order,
// alert an operator). RemoteLookupFailed is an infrastructure miss; retrying the
// whole resolution may succeed.
package errs
