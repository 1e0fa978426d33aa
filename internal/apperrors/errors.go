package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateUnavailable indicates the exchange rate provider is unreachable and
// no cached rate exists for the requested pair. Callers are expected to
// degrade to the unconverted amount rather than fail the request.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrCalculation indicates an unexpected numeric failure inside the
// calculation engine. Handlers catch it and return a zeroed result structure.
var ErrCalculation = errors.New("calculation error")
