package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetIngredients     = "success get ingredients"
	MessageSuccessGetIngredient      = "success get ingredient"
	MessageSuccessCreateIngredient   = "ingredient created successfully"
	MessageSuccessUpdateIngredient   = "ingredient updated successfully"
	MessageSuccessDeleteIngredient   = "ingredient deleted successfully"
	MessageSuccessModerateIngredient = "ingredient moderation updated"

	MessageFailedGetIngredients     = "failed to get ingredients"
	MessageFailedGetIngredient      = "failed to get ingredient"
	MessageFailedCreateIngredient   = "failed to create ingredient"
	MessageFailedUpdateIngredient   = "failed to update ingredient"
	MessageFailedDeleteIngredient   = "failed to delete ingredient"
	MessageFailedModerateIngredient = "failed to update ingredient moderation"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	CreateIngredientRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	UpdateIngredientRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	IngredientResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Status      string    `json:"status"`
		ApproverID  string    `json:"approver_id,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		Links       Links     `json:"_links,omitempty"`
	}

	IngredientListResponse struct {
		Ingredients []IngredientResponse `json:"ingredients"`
		Pagination  Pagination           `json:"pagination"`
		Links       Links                `json:"_links,omitempty"`
	}
)
