package models

// Item is a thing an owner offers for rent. RequestID links the item to
// the wishlist request it answers, when there is one.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// ItemPatch carries the fields of a partial item update. Nil fields keep
// their stored values.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Merge applies patch onto i and returns the result.
func (i Item) Merge(patch ItemPatch) Item {
	if patch.Name != nil {
		i.Name = *patch.Name
	}
	if patch.Description != nil {
		i.Description = *patch.Description
	}
	if patch.Available != nil {
		i.Available = *patch.Available
	}
	return i
}
