package entities

import (
	"strings"
	"time"
)

// User represents an account that can sign in and take part in meetings
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null;default:''"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"` // Never expose in JSON
	Role         UserRole  `json:"role" gorm:"type:varchar(20);default:'User';not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// UserRole defines user roles
type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// NewUser creates a new user with the default role
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		Role:         RoleUser,
	}
}

// IsAdmin checks if user is admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.PasswordHash == "" {
		return ErrInvalidPassword
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
