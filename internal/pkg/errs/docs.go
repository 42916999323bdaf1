// Package errs provides the error kinds shared by every layer of the cafeteria service.
//
// Each kind follows the same pattern:
//   - a sentinel error (ErrObjectNotFound, ErrForbidden, ...) used with errors.Is
//   - a struct carrying the details of the failure and an optional Cause
//   - New*Error and New*ErrorWithCause constructors
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The HTTP boundary maps sentinels to a stable machine-readable kind, so new
// failure modes should wrap one of the sentinels below rather than invent
// free-form errors.
package errs
