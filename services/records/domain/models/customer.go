package models

// Customer is a stored customer record. ID is assigned by the store on
// creation and immutable afterwards.
type Customer struct {
	ID    int64
	Name  string
	Phone string
}

// CustomerPatch is a partial update for a Customer. A nil field means
// "not supplied — keep the stored value"; a non-nil field overwrites it.
type CustomerPatch struct {
	ID    *int64
	Name  *string
	Phone *string
}

// IsEmpty reports whether the patch carries no updatable field.
// The ID field is never updatable and does not count.
func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil
}
