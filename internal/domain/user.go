package domain

import "time"

// User is the read-side view of an account owned by the identity provider.
// Credentials never reach this service.
type User struct {
	ID        int64
	NickName  string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}

// IsAdmin reports whether the user may moderate.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}
