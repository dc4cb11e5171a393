package domain

import (
	"errors"
	"fmt"
)

// Error kinds for the records bounded context. Every operation failure wraps
// one of these; pkg/errhttp maps them to HTTP status codes. Use errors.Is()
// to check them.
var (
	// ErrInvalidInput indicates the client supplied a store-assigned field
	// or omitted a required one.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the target entity, or an entity it references,
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
)

// Per-entity sentinels. Each wraps one of the kinds above so callers can
// match either the specific failure or the broad kind.
var (
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrItemNotFound     = fmt.Errorf("item %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)

	// ErrItemNameTaken indicates an item with the same name already exists.
	ErrItemNameTaken = fmt.Errorf("%w: item with that name already exists", ErrConflict)

	// ErrIDOnCreate indicates a client-supplied identifier on a create call.
	ErrIDOnCreate = fmt.Errorf("%w: id cannot be set on create", ErrInvalidInput)

	// ErrIDMismatch indicates a body identifier that disagrees with the path.
	ErrIDMismatch = fmt.Errorf("%w: id does not match id in path", ErrInvalidInput)

	// ErrCustomerRequired indicates a missing cust_id on order creation.
	ErrCustomerRequired = fmt.Errorf("%w: cust_id is required", ErrInvalidInput)
)
