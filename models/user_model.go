package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleStaff   UserRole = "staff"
	RoleStudent UserRole = "student"
)

// Level orders roles for permission checks: student < staff < admin.
func (r UserRole) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleStaff:
		return 2
	case RoleStudent:
		return 1
	}
	return 0
}

func (r UserRole) AtLeast(required UserRole) bool {
	return r.Level() >= required.Level()
}

type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Role     UserRole  `json:"role"`
	Phone    string    `json:"phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
