package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAnalyst Role = "analyst"
	RoleViewer  Role = "viewer"
)

var ErrUserExists = errors.New("username or email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrUnauthenticated = errors.New("could not validate credentials")
var ErrInactiveUser = errors.New("inactive user")
var ErrForbidden = errors.New("not enough permissions")
var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts a string to a Role. The empty string defaults to
// RoleViewer so that registration without an explicit role stays valid.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleAnalyst, RoleViewer:
		return Role(s), nil
	case "":
		return RoleViewer, nil
	}
	return "", ErrInvalidRole
}

// Satisfies reports whether a user holding this role may perform an
// operation that requires the given role. Admin satisfies every
// requirement; there is no ordering between the other roles.
func (r Role) Satisfies(required Role) bool {
	return r == required || r == RoleAdmin
}

// User models an authenticated actor in the system.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name,omitempty"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
