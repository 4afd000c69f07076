package entity

// Role values a User can carry.
const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// User is a fixture-seeded account. Accounts are immutable at runtime;
// lookups happen by email+password at login and by ID afterwards.
//
// Password is a plaintext demo credential matched verbatim against the
// fixture list. It is stripped before a user record leaves the auth service.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// Sanitized returns a copy safe to persist or return to callers.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// IsAdmin reports whether the user holds the coach/admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
