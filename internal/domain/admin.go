package domain

import "time"

// AdminRole enumerates capabilities grantable to admin users.
type AdminRole string

const (
	RoleAdmin AdminRole = "admin"
)

// AdminUser is an identity allowed to sign in to the admin surface.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleGrant links an admin user to a capability. Existence of the record,
// not its content, gates access to the admin surface.
type RoleGrant struct {
	ID        string
	UserID    string
	Role      AdminRole
	CreatedAt time.Time
}
