package models

// User is a registered participant of the rental service. A user may both
// list items as an owner and book other users' items.
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserPatch is a partial update where nil means "keep the current value".
type UserPatch struct {
	Name  *string
	Email *string
}

// Merge applies the patch onto an existing user and returns the result.
// Pure: neither the receiver nor the patch is mutated.
func (u User) Merge(patch UserPatch) User {
	out := u
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Email != nil {
		out.Email = *patch.Email
	}
	return out
}
