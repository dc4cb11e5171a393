package models

import "time"

// Order is a stored order record. CustID must reference an existing
// Customer at write time; Timestamp is assigned by the store at creation
// (Unix seconds) and never changes afterwards.
type Order struct {
	ID        int64
	Notes     string
	CustID    int64
	Timestamp int64
}

// NewOrder constructs an Order with its timestamp taken from now.
// Any client-supplied timestamp is ignored by the caller before this point.
func NewOrder(notes string, custID int64, now time.Time) *Order {
	return &Order{
		Notes:     notes,
		CustID:    custID,
		Timestamp: now.Unix(),
	}
}

// OrderPatch is a partial update for an Order. Timestamp is carried so the
// store can document that it is discarded; it never enters the update set.
type OrderPatch struct {
	ID        *int64
	Notes     *string
	CustID    *int64
	Timestamp *int64
}

// IsEmpty reports whether the patch carries no updatable field.
// Timestamp is immutable and does not count.
func (p OrderPatch) IsEmpty() bool {
	return p.Notes == nil && p.CustID == nil
}
