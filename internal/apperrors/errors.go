package apperrors

import "errors"

// ErrNotFound indicates that an operation targeted an unknown key.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates malformed, missing or contradictory input; the
// caller must fix the request and retry.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates a unique-key violation, e.g. a duplicate account
// name or report date.
var ErrDuplicate = errors.New("resource already exists")
