package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps the users table. One account per person; the role
// decides which dashboard the frontend redirects to after login.
type UserModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string     `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email    string     `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string     `gorm:"not null" json:"-" validate:"required,min=8"`
	Role     string     `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	SchoolID *uuid.UUID `gorm:"type:uuid" json:"school_id,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
