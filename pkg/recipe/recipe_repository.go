package recipe

import (
	"context"

	"cookbook-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListQuery narrows a recipe listing. A nil field means no filter on it; an
// empty Status means unfiltered.
type ListQuery struct {
	Status       string
	OwnerID      *uuid.UUID
	IngredientID *uuid.UUID
	CuisineID    *uuid.UUID
}

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, query ListQuery, page, limit int) ([]*entities.Recipe, int64, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipeCascade(ctx context.Context, id uuid.UUID) error

		IngredientExists(ctx context.Context, id uuid.UUID) (bool, error)
		AddIngredientQty(ctx context.Context, qty *entities.RecipeIngredientQty) error
		GetIngredientQty(ctx context.Context, recipeID, ingredientID uuid.UUID) (*entities.RecipeIngredientQty, error)
		GetIngredientQtys(ctx context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredientQty, error)
		UpdateIngredientQty(ctx context.Context, qty *entities.RecipeIngredientQty) error
		DeleteIngredientQty(ctx context.Context, recipeID, ingredientID uuid.UUID) error

		CuisineExists(ctx context.Context, id uuid.UUID) (bool, error)
		AddCuisineLink(ctx context.Context, link *entities.RecipeCuisine) error
		CuisineLinked(ctx context.Context, recipeID, cuisineID uuid.UUID) (bool, error)
		DeleteCuisineLink(ctx context.Context, recipeID, cuisineID uuid.UUID) error

		NutritionFactExists(ctx context.Context, id uuid.UUID) (bool, error)
		AddNutritionLink(ctx context.Context, link *entities.RecipeNutrition) error
		NutritionLinked(ctx context.Context, recipeID, factID uuid.UUID) (bool, error)
		DeleteNutritionLink(ctx context.Context, recipeID, factID uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Preload("Cuisines.Cuisine").
		Preload("Nutrition.NutritionFact").
		Preload("Reviews.User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, query ListQuery, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	base := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if query.Status != "" {
		base = base.Where("recipes.status = ?", query.Status)
	}
	if query.OwnerID != nil {
		base = base.Where("recipes.user_id = ?", *query.OwnerID)
	}
	if query.IngredientID != nil {
		base = base.
			Joins("JOIN recipe_ingredient_qties ON recipes.id = recipe_ingredient_qties.recipe_id").
			Where("recipe_ingredient_qties.ingredient_id = ?", *query.IngredientID)
	}
	if query.CuisineID != nil {
		base = base.
			Joins("JOIN recipe_cuisines ON recipes.id = recipe_cuisines.recipe_id").
			Where("recipe_cuisines.cuisine_id = ?", *query.CuisineID)
	}

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.
		Offset(offset).
		Limit(limit).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipeCascade executes the recipe deletion plan in one transaction:
// dependents first, the recipe last.
func (r *recipeRepository) DeleteRecipeCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range entities.RecipeDeletePlan() {
			if err := tx.Where(step.Column+" = ?", id).Delete(step.Model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) IngredientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) AddIngredientQty(ctx context.Context, qty *entities.RecipeIngredientQty) error {
	return r.db.WithContext(ctx).Create(qty).Error
}

func (r *recipeRepository) GetIngredientQty(ctx context.Context, recipeID, ingredientID uuid.UUID) (*entities.RecipeIngredientQty, error) {
	var qty entities.RecipeIngredientQty
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		First(&qty).Error; err != nil {
		return nil, err
	}
	return &qty, nil
}

func (r *recipeRepository) GetIngredientQtys(ctx context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredientQty, error) {
	var qtys []*entities.RecipeIngredientQty
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Find(&qtys).Error; err != nil {
		return nil, err
	}
	return qtys, nil
}

func (r *recipeRepository) UpdateIngredientQty(ctx context.Context, qty *entities.RecipeIngredientQty) error {
	return r.db.WithContext(ctx).Save(qty).Error
}

func (r *recipeRepository) DeleteIngredientQty(ctx context.Context, recipeID, ingredientID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&entities.RecipeIngredientQty{}).Error
}

func (r *recipeRepository) CuisineExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Cuisine{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) AddCuisineLink(ctx context.Context, link *entities.RecipeCuisine) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *recipeRepository) CuisineLinked(ctx context.Context, recipeID, cuisineID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCuisine{}).
		Where("recipe_id = ? AND cuisine_id = ?", recipeID, cuisineID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) DeleteCuisineLink(ctx context.Context, recipeID, cuisineID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND cuisine_id = ?", recipeID, cuisineID).
		Delete(&entities.RecipeCuisine{}).Error
}

func (r *recipeRepository) NutritionFactExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.NutritionFact{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) AddNutritionLink(ctx context.Context, link *entities.RecipeNutrition) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *recipeRepository) NutritionLinked(ctx context.Context, recipeID, factID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeNutrition{}).
		Where("recipe_id = ? AND nutrition_fact_id = ?", recipeID, factID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) DeleteNutritionLink(ctx context.Context, recipeID, factID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND nutrition_fact_id = ?", recipeID, factID).
		Delete(&entities.RecipeNutrition{}).Error
}
