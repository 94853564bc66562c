package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleEmployee  = "employee"
	RoleHRManager = "hr_manager"
	RoleCounselor = "counselor"
)

// User is an account that can log in and own complaints, meetings and
// notifications. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Username   string     `json:"username"`
	Password   string     `json:"-"`
	Email      string     `gorm:"uniqueIndex" json:"email"`
	Phone      string     `gorm:"uniqueIndex" json:"phone"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Department string     `json:"department"`
	IsActive   bool       `json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// BeforeCreate generates a UUID for the user if the ID is not set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// UserPatch carries the fields a partial user update may overwrite.
// Nil fields are left untouched.
type UserPatch struct {
	Username   *string    `json:"username"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	Name       *string    `json:"name"`
	Role       *string    `json:"role"`
	Department *string    `json:"department"`
	IsActive   *bool      `json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin"`
}
