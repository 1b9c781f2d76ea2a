// Package errs provides standardized error types for the marketplace
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the scenarios the core reports:
//   - ObjectNotFoundError: a referenced order, shop, or principal is absent
//   - ObjectAlreadyExistsError: a registration conflict (username, shop name)
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     malformed or missing input values
//   - UnauthorizedError: the caller lacks the required session or role
//   - InvalidCredentialsError: a failed authentication attempt
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The core reports errors precisely and once; translation into HTTP status
// codes or user-visible messages happens only at the request boundary.
package errs
