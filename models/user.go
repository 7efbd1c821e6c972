package models

import "time"

// Role describes the authorization level of a user account.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to ideas owned by other users.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer.
	UserID int64 `json:"id"`

	// Email is the unique, case-normalized identifier used during
	// authentication. Always stored lowercase.
	Email string `json:"email"`

	// Password stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from every JSON serialization.
	Password string `json:"-"`

	// FirstName is the user's given name. Non-sensitive.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Non-sensitive.
	LastName string `json:"lastName"`

	// Role is the authorization level of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed by the persistence layer on every update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the sanitized view of an authenticated user that travels
// with the request context. It never carries the password digest.
type Identity struct {
	UserID    int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// NewIdentity derives an Identity from a persisted user record.
func NewIdentity(u User) Identity {
	return Identity{
		UserID:    u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
