package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_review" json:"user_id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_user_recipe_review" json:"recipe_id"`
	Rating   int       `gorm:"not null" json:"rating"` // 1..5
	Feedback string    `gorm:"type:text" json:"feedback"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}
