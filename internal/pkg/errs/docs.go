// Package errs provides the typed errors shared by the attendance core.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors returning a pointer
//   - Unwrap returning the sentinel, so callers never match on message text
//
// Domain packages build their own sentinels on top of these (for example a
// required job name is errs.NewValueIsRequiredError("name")), and the HTTP
// adapter maps the sentinels onto status codes.
package errs
