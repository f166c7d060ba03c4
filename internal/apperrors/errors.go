package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstreamLookup indicates that an outbound call to a third-party lookup
// service failed (transport error, non-2xx status, or a failure body).
// Callers substitute a documented default instead of surfacing this to
// HTTP clients.
var ErrUpstreamLookup = errors.New("upstream lookup failed")
