package domain

import "errors"

// ErrMalformedBatch indicates the raw order batch failed structural
// validation: not a well-formed list, or an order missing phone, name, or
// items, or a line item missing name or price. Use errors.Is() to check.
var ErrMalformedBatch = errors.New("malformed order batch")
