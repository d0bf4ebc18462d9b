// Package entities contains core business entities.
package entities

import "time"

// Role enumerates user roles.
type Role string

const (
	// RoleAdmin grants administrative access.
	RoleAdmin Role = "admin"
	// RoleUser is the default member role.
	RoleUser Role = "user"
)

// User is a domain representation of a registered account.
// PasswordHash holds the bcrypt digest; plaintext is never stored.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credentials couples a user with a freshly issued session token.
type Credentials struct {
	User  User
	Token string
}
