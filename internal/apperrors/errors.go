package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller's credentials are missing or wrong.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateUnavailable indicates that a requested currency code is absent from
// the current rate table.
var ErrRateUnavailable = errors.New("exchange rate unavailable")
