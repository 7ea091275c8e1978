package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetReviews   = "success get reviews"
	MessageSuccessGetReview    = "success get review"
	MessageSuccessCreateReview = "review created successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"

	MessageFailedGetReviews   = "failed to get reviews"
	MessageFailedGetReview    = "failed to get review"
	MessageFailedCreateReview = "failed to create review"
	MessageFailedUpdateReview = "failed to update review"
	MessageFailedDeleteReview = "failed to delete review"

	ErrReviewNotFound   = errors.New("review not found")
	ErrRatingOutOfRange = errors.New("rating out of range")
	ErrAlreadyReviewed  = errors.New("recipe already reviewed by this user")
)

type (
	CreateReviewRequest struct {
		Rating   int    `json:"rating" validate:"required"`
		Feedback string `json:"feedback"`
	}

	UpdateReviewRequest struct {
		Rating   int    `json:"rating" validate:"omitempty"`
		Feedback string `json:"feedback" validate:"omitempty"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		RecipeID  string    `json:"recipe_id"`
		Rating    int       `json:"rating"`
		Feedback  string    `json:"feedback"`
		CreatedAt time.Time `json:"created_at"`
		Links     Links     `json:"_links,omitempty"`
	}

	ReviewListResponse struct {
		Reviews    []ReviewResponse `json:"reviews"`
		Pagination Pagination       `json:"pagination"`
		Links      Links            `json:"_links,omitempty"`
	}
)
