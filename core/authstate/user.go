package authstate

import "github.com/google/uuid"

// User roles as reported by the backend.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the authenticated identity returned by the backend. The client
// holds a read-only copy; the backend owns the record.
type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName,omitempty"`
	LastName          string    `json:"lastName,omitempty"`
	Role              string    `json:"role"`
	Avatar            string    `json:"avatar,omitempty"`
	EmailVerified     bool      `json:"emailVerified"`
	PreferredLanguage string    `json:"preferredLanguage,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
