package migration

import (
	"fmt"
	"log"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/pkg/moderation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.Ingredient{},
		&entities.Cuisine{},
		&entities.NutritionFact{},
		&entities.Recipe{},
		&entities.RecipeIngredientQty{},
		&entities.RecipeCuisine{},
		&entities.RecipeNutrition{},
		&entities.Review{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}

// Seed fills an empty database with a small working data set: one moderator,
// one regular user, a handful of approved reference entities and two recipes
// with ingredients and reviews. Intended for local development only.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing seed password: %v", err)
		}
		return string(h)
	}

	moderator := entities.User{
		ID:            uuid.New(),
		Username:      "mod",
		Email:         "mod@example.com",
		Password:      hash("moderator123"),
		Role:          domain.RoleModerator,
		EmailVerified: true,
	}
	cook := entities.User{
		ID:            uuid.New(),
		Username:      "homecook",
		Email:         "cook@example.com",
		Password:      hash("homecook123"),
		Role:          domain.RoleRegular,
		EmailVerified: true,
	}
	if err := db.Create([]*entities.User{&moderator, &cook}).Error; err != nil {
		return err
	}

	approved := func() (string, *uuid.UUID) {
		id := moderator.ID
		return moderation.StatusApproved, &id
	}

	ingredients := make([]*entities.Ingredient, 0, 4)
	for _, name := range []string{"flour", "egg", "milk", "butter"} {
		status, approver := approved()
		ingredients = append(ingredients, &entities.Ingredient{
			ID:         uuid.New(),
			Name:       name,
			Status:     status,
			ApproverID: approver,
		})
	}
	if err := db.Create(ingredients).Error; err != nil {
		return err
	}

	status, approver := approved()
	pancakes := entities.Recipe{
		ID:              uuid.New(),
		UserID:          cook.ID,
		Title:           "Pancakes",
		Description:     "Classic breakfast pancakes",
		Steps:           "Mix the batter, rest it, fry on medium heat.",
		PreparationTime: "10 min",
		CookingTime:     "15 min",
		Serving:         4,
		Status:          status,
		ApproverID:      approver,
	}
	omelette := entities.Recipe{
		ID:              uuid.New(),
		UserID:          cook.ID,
		Title:           "Omelette",
		Description:     "Three egg omelette",
		Steps:           "Whisk eggs, cook in butter, fold.",
		PreparationTime: "5 min",
		CookingTime:     "5 min",
		Serving:         1,
		Status:          moderation.StatusPending,
	}
	if err := db.Create([]*entities.Recipe{&pancakes, &omelette}).Error; err != nil {
		return err
	}

	qtys := []*entities.RecipeIngredientQty{
		{ID: uuid.New(), RecipeID: pancakes.ID, IngredientID: ingredients[0].ID, Qty: 200, Metric: "g"},
		{ID: uuid.New(), RecipeID: pancakes.ID, IngredientID: ingredients[1].ID, Qty: 2, Metric: "pcs"},
		{ID: uuid.New(), RecipeID: pancakes.ID, IngredientID: ingredients[2].ID, Qty: 300, Metric: "ml"},
		{ID: uuid.New(), RecipeID: omelette.ID, IngredientID: ingredients[1].ID, Qty: 3, Metric: "pcs"},
		{ID: uuid.New(), RecipeID: omelette.ID, IngredientID: ingredients[3].ID, Qty: 10, Metric: "g"},
	}
	if err := db.Create(qtys).Error; err != nil {
		return err
	}

	review := entities.Review{
		ID:       uuid.New(),
		UserID:   moderator.ID,
		RecipeID: pancakes.ID,
		Rating:   5,
		Feedback: "Fluffy and quick.",
	}
	if err := db.Create(&review).Error; err != nil {
		return err
	}

	fmt.Println("Database seed complete")
	return nil
}
