package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessModerateRecipe   = "recipe moderation updated"
	MessageSuccessAddIngredient    = "ingredient added to recipe"
	MessageSuccessRemoveIngredient = "ingredient removed from recipe"
	MessageSuccessAddCuisine       = "cuisine added to recipe"
	MessageSuccessRemoveCuisine    = "cuisine removed from recipe"
	MessageSuccessAddNutrition     = "nutrition fact added to recipe"
	MessageSuccessRemoveNutrition  = "nutrition fact removed from recipe"
	MessageSuccessUploadImage      = "recipe image uploaded successfully"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedModerateRecipe   = "failed to update recipe moderation"
	MessageFailedAddIngredient    = "failed to add ingredient to recipe"
	MessageFailedRemoveIngredient = "failed to remove ingredient from recipe"
	MessageFailedAddCuisine       = "failed to add cuisine to recipe"
	MessageFailedRemoveCuisine    = "failed to remove cuisine from recipe"
	MessageFailedAddNutrition     = "failed to add nutrition fact to recipe"
	MessageFailedRemoveNutrition  = "failed to remove nutrition fact from recipe"
	MessageFailedUploadImage      = "failed to upload recipe image"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	CreateRecipeRequest struct {
		Title           string `json:"title" validate:"required"`
		Description     string `json:"description"`
		Steps           string `json:"steps" validate:"required"`
		PreparationTime string `json:"preparation_time" validate:"required"`
		CookingTime     string `json:"cooking_time" validate:"required"`
		Serving         int    `json:"serving" validate:"required,min=1"`
	}

	UpdateRecipeRequest struct {
		Title           string `json:"title" validate:"omitempty"`
		Description     string `json:"description" validate:"omitempty"`
		Steps           string `json:"steps" validate:"omitempty"`
		PreparationTime string `json:"preparation_time" validate:"omitempty"`
		CookingTime     string `json:"cooking_time" validate:"omitempty"`
		Serving         int    `json:"serving" validate:"omitempty,min=1"`
	}

	RecipeFilter struct {
		Status       string `json:"status" validate:"omitempty,oneof=pending approved rejected all"`
		IngredientID string `json:"ingredient_id" validate:"omitempty,uuid"`
		CuisineID    string `json:"cuisine_id" validate:"omitempty,uuid"`
		OwnerID      string `json:"owner_id" validate:"omitempty,uuid"`
	}

	RecipeResponse struct {
		ID              string     `json:"id"`
		UserID          string     `json:"user_id"`
		Title           string     `json:"title"`
		Description     string     `json:"description"`
		Steps           string     `json:"steps"`
		PreparationTime string     `json:"preparation_time"`
		CookingTime     string     `json:"cooking_time"`
		Serving         int        `json:"serving"`
		ImageURL        string     `json:"image_url,omitempty"`
		Status          string     `json:"status"`
		ApproverID      string     `json:"approver_id,omitempty"`
		CreatedAt       time.Time  `json:"created_at"`
		UpdatedAt       time.Time  `json:"updated_at"`
		Links           Links      `json:"_links,omitempty"`
	}

	RecipeIngredientResponse struct {
		ID           string  `json:"id"`
		IngredientID string  `json:"ingredient_id"`
		Name         string  `json:"name"`
		Qty          float64 `json:"qty"`
		Metric       string  `json:"metric"`
		Links        Links   `json:"_links,omitempty"`
	}

	RecipeReviewResponse struct {
		ID       string `json:"id"`
		Rating   int    `json:"rating"`
		Feedback string `json:"feedback"`
		Username string `json:"username"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
		Cuisines    []CuisineResponse          `json:"cuisines"`
		Nutrition   []NutritionFactResponse    `json:"nutrition"`
		Reviews     []RecipeReviewResponse     `json:"reviews"`
	}

	RecipeListResponse struct {
		Recipes    []RecipeResponse `json:"recipes"`
		Pagination Pagination       `json:"pagination"`
		Links      Links            `json:"_links,omitempty"`
	}

	AddRecipeIngredientRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Qty          float64 `json:"qty" validate:"required,gt=0"`
		Metric       string  `json:"metric" validate:"required,max=20"`
	}

	UpdateRecipeIngredientRequest struct {
		Qty    float64 `json:"qty" validate:"omitempty,gt=0"`
		Metric string  `json:"metric" validate:"omitempty,max=20"`
	}

	AddRecipeCuisineRequest struct {
		CuisineID string `json:"cuisine_id" validate:"required,uuid"`
	}

	AddRecipeNutritionRequest struct {
		NutritionFactID string `json:"nutrition_fact_id" validate:"required,uuid"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
