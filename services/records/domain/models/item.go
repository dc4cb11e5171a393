package models

// Item is a stored catalog item. Name is unique across all items.
type Item struct {
	ID    int64
	Name  string
	Price float64
}

// ItemPatch is a partial update for an Item. A nil field means
// "not supplied — keep the stored value".
type ItemPatch struct {
	ID    *int64
	Name  *string
	Price *float64
}

// IsEmpty reports whether the patch carries no updatable field.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil
}
