package models

import "time"

type UserRole string

const (
	RoleOverseer UserRole = "overseer"
	RoleExecutor UserRole = "executor"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleOverseer || r == RoleExecutor
}

type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}

// TeamMember records a user's membership on a board.
type TeamMember struct {
	UserID   string    `json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}
