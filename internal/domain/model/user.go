package model

import (
	"time"
)

const (
	RoleHacker  = "hacker"
	RoleCompany = "company"
)

// ValidRole reports whether role is one a user can register with.
func ValidRole(role string) bool {
	return role == RoleHacker || role == RoleCompany
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	Reputation     float64   `json:"reputation"`
	CreatedAt      time.Time `json:"created_at"`
}

// PublicUser is the subset of a user returned by register and login.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role}
}
