package domain

import "time"

const DefaultRole = "ROLE_USER"

type User struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Password  string        `json:"-"`
	Roles     []UserRoleKey `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

// UserRoleKey is the composite key of the user-role link.
type UserRoleKey struct {
	UserID string
	RoleID uint
}

// Identity is the authenticated view of an account.
type Identity struct {
	AccountID      string
	Email          string
	CredentialHash string
	RoleNames      []string
}
