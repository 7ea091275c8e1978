package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNutritionFacts     = "success get nutrition facts"
	MessageSuccessGetNutritionFact      = "success get nutrition fact"
	MessageSuccessCreateNutritionFact   = "nutrition fact created successfully"
	MessageSuccessUpdateNutritionFact   = "nutrition fact updated successfully"
	MessageSuccessDeleteNutritionFact   = "nutrition fact deleted successfully"
	MessageSuccessModerateNutritionFact = "nutrition fact moderation updated"

	MessageFailedGetNutritionFacts     = "failed to get nutrition facts"
	MessageFailedGetNutritionFact      = "failed to get nutrition fact"
	MessageFailedCreateNutritionFact   = "failed to create nutrition fact"
	MessageFailedUpdateNutritionFact   = "failed to update nutrition fact"
	MessageFailedDeleteNutritionFact   = "failed to delete nutrition fact"
	MessageFailedModerateNutritionFact = "failed to update nutrition fact moderation"

	ErrNutritionFactNotFound = errors.New("nutrition fact not found")
)

type (
	CreateNutritionFactRequest struct {
		Name     string `json:"name" validate:"required"`
		Benefits string `json:"benefits"`
	}

	UpdateNutritionFactRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Benefits string `json:"benefits" validate:"omitempty"`
	}

	NutritionFactResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Benefits   string    `json:"benefits"`
		Status     string    `json:"status"`
		ApproverID string    `json:"approver_id,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
		Links      Links     `json:"_links,omitempty"`
	}

	NutritionFactListResponse struct {
		NutritionFacts []NutritionFactResponse `json:"nutrition_facts"`
		Pagination     Pagination              `json:"pagination"`
		Links          Links                   `json:"_links,omitempty"`
	}
)
