package entity

import (
	"time"
)

// User represents a registered member of the community
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	Role           UserRole  `json:"role"`
	IsActive       bool      `json:"isActive"`
	FavoriteBrands []string  `json:"favoriteBrands"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// UserPatch is a shallow-merge update. Nil fields are left untouched.
type UserPatch struct {
	Name           *string
	Bio            *string
	Avatar         *string
	FavoriteBrands []string
	IsActive       *bool
}

// AuthUser is returned by login and registration.
type AuthUser struct {
	ID     string   `json:"id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Avatar string   `json:"avatar"`
	Role   UserRole `json:"role"`
	Token  string   `json:"token"`
}

// DefaultAvatarURL builds the generated avatar used for new accounts.
func DefaultAvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}
