package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCuisines     = "success get cuisines"
	MessageSuccessGetCuisine      = "success get cuisine"
	MessageSuccessCreateCuisine   = "cuisine created successfully"
	MessageSuccessUpdateCuisine   = "cuisine updated successfully"
	MessageSuccessDeleteCuisine   = "cuisine deleted successfully"
	MessageSuccessModerateCuisine = "cuisine moderation updated"

	MessageFailedGetCuisines     = "failed to get cuisines"
	MessageFailedGetCuisine      = "failed to get cuisine"
	MessageFailedCreateCuisine   = "failed to create cuisine"
	MessageFailedUpdateCuisine   = "failed to update cuisine"
	MessageFailedDeleteCuisine   = "failed to delete cuisine"
	MessageFailedModerateCuisine = "failed to update cuisine moderation"

	ErrCuisineNotFound = errors.New("cuisine not found")
)

type (
	CreateCuisineRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	UpdateCuisineRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	CuisineResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Status      string    `json:"status"`
		ApproverID  string    `json:"approver_id,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		Links       Links     `json:"_links,omitempty"`
	}

	CuisineListResponse struct {
		Cuisines   []CuisineResponse `json:"cuisines"`
		Pagination Pagination        `json:"pagination"`
		Links      Links             `json:"_links,omitempty"`
	}
)
