package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateSourceUnavailable covers every way a remote rate fetch can fail:
// network errors, non-success responses and malformed payloads.
var ErrRateSourceUnavailable = errors.New("rate source unavailable")

// ErrLeadDelivery indicates that a validated lead could not be handed off.
var ErrLeadDelivery = errors.New("lead delivery failed")
