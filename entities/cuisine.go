package entities

import (
	"github.com/google/uuid"
)

type Cuisine struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `gorm:"uniqueIndex;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"default:pending" json:"status"` // pending, approved, rejected
	ApproverID  *uuid.UUID `json:"approver_id,omitempty"`

	Approver *User            `gorm:"foreignKey:ApproverID" json:"approver,omitempty"`
	Recipes  []*RecipeCuisine `gorm:"foreignKey:CuisineID" json:"recipes,omitempty"`
	Timestamp
}
