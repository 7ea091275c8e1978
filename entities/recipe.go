package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Steps           string     `gorm:"type:text;not null" json:"steps"`
	PreparationTime string     `gorm:"not null" json:"preparation_time"`
	CookingTime     string     `gorm:"not null" json:"cooking_time"`
	Serving         int        `gorm:"not null" json:"serving"`
	ImageURL        string     `json:"image_url,omitempty"`
	Status          string     `gorm:"default:pending" json:"status"` // pending, approved, rejected
	ApproverID      *uuid.UUID `json:"approver_id,omitempty"`

	User        *User                  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Approver    *User                  `gorm:"foreignKey:ApproverID" json:"approver,omitempty"`
	Ingredients []*RecipeIngredientQty `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Cuisines    []*RecipeCuisine       `gorm:"foreignKey:RecipeID" json:"cuisines,omitempty"`
	Nutrition   []*RecipeNutrition     `gorm:"foreignKey:RecipeID" json:"nutrition,omitempty"`
	Reviews     []*Review              `gorm:"foreignKey:RecipeID" json:"reviews,omitempty"`
	Timestamp
}

type RecipeIngredientQty struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `gorm:"uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Qty          float64   `gorm:"not null" json:"qty"`
	Metric       string    `gorm:"not null" json:"metric"` // g, ml, tablespoon, ...

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Timestamp
}

type RecipeCuisine struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_recipe_cuisine" json:"recipe_id"`
	CuisineID uuid.UUID `gorm:"uniqueIndex:idx_recipe_cuisine" json:"cuisine_id"`

	Recipe  *Recipe  `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Cuisine *Cuisine `gorm:"foreignKey:CuisineID" json:"cuisine,omitempty"`
	Timestamp
}

type RecipeNutrition struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID        uuid.UUID `gorm:"uniqueIndex:idx_recipe_nutrition" json:"recipe_id"`
	NutritionFactID uuid.UUID `gorm:"uniqueIndex:idx_recipe_nutrition" json:"nutrition_fact_id"`

	Recipe        *Recipe        `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	NutritionFact *NutritionFact `gorm:"foreignKey:NutritionFactID" json:"nutrition_fact,omitempty"`
	Timestamp
}
