package domain

// User is the identity adopted from a login response and mirrored in the
// durable credential store alongside the raw token.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// Session is the client's in-memory belief about who is logged in.
// User is non-nil exactly when a non-expired credential sits in the
// durable store; Restoring covers the window before the first Restore
// completes so consumers can hold off rendering decisions.
type Session struct {
	User      *User
	Restoring bool
}

// Authenticated is derived from User and never stored on its own, so the
// two cannot drift apart.
func (s Session) Authenticated() bool {
	return s.User != nil
}

// Merge patches the given non-zero fields into a copy of the user.
// Roles are replaced only when a non-nil slice is supplied.
func (u User) Merge(patch UserPatch) User {
	merged := u
	if patch.Username != nil {
		merged.Username = *patch.Username
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Roles != nil {
		merged.Roles = patch.Roles
	}
	return merged
}

// UserPatch is a partial set of user fields for update-merge.
type UserPatch struct {
	Username *string
	Email    *string
	Roles    []string
}
