package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `gorm:"uniqueIndex;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"default:pending" json:"status"` // pending, approved, rejected
	ApproverID  *uuid.UUID `json:"approver_id,omitempty"`

	Approver *User                  `gorm:"foreignKey:ApproverID" json:"approver,omitempty"`
	Recipes  []*RecipeIngredientQty `gorm:"foreignKey:IngredientID" json:"recipes,omitempty"`
	Timestamp
}
