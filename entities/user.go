package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Username      string    `gorm:"uniqueIndex;not null" json:"username"`
	Password      string    `gorm:"not null" json:"-"`
	Role          string    `gorm:"default:regular" json:"role"` // regular, moderator
	EmailVerified bool      `json:"email_verified"`

	Recipes []*Recipe `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
	Reviews []*Review `gorm:"foreignKey:UserID" json:"reviews,omitempty"`
	Timestamp
}
