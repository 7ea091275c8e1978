package review

import (
	"context"
	"errors"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/hypermedia"
	"cookbook-backend/pkg/moderation"
	"cookbook-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, recipeID string, req domain.CreateReviewRequest, actor auth.Identity) (domain.ReviewResponse, error)
		GetReview(ctx context.Context, id string, viewer auth.Identity) (domain.ReviewResponse, error)
		GetRecipeReviews(ctx context.Context, recipeID string, page, limit int, viewer auth.Identity) (domain.ReviewListResponse, error)
		UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, actor auth.Identity) (domain.ReviewResponse, error)
		DeleteReview(ctx context.Context, id string, actor auth.Identity) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, recipeID string, req domain.CreateReviewRequest, actor auth.Identity) (domain.ReviewResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.ReviewResponse{}, err
	}
	if req.Rating < domain.RatingMin || req.Rating > domain.RatingMax {
		return domain.ReviewResponse{}, domain.ErrRatingOutOfRange
	}

	target, err := s.visibleRecipe(ctx, recipeID, actor)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	// Only published recipes collect reviews; a pending one the owner can
	// still see is not reviewable yet.
	if target.Status != moderation.StatusApproved {
		return domain.ReviewResponse{}, domain.ErrForbidden
	}

	if _, err := s.reviewRepository.GetReviewByUserAndRecipe(ctx, actor.UserID, target.ID); err == nil {
		return domain.ReviewResponse{}, domain.ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReviewResponse{}, err
	}

	review := &entities.Review{
		ID:       uuid.New(),
		UserID:   actor.UserID,
		RecipeID: target.ID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	}
	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ReviewResponse{}, domain.ErrAlreadyReviewed
		}
		return domain.ReviewResponse{}, err
	}

	return toReviewResponse(review, actor), nil
}

func (s *reviewService) GetReview(ctx context.Context, id string, viewer auth.Identity) (domain.ReviewResponse, error) {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrReviewNotFound
		}
		return domain.ReviewResponse{}, err
	}

	// A review is as visible as the recipe it belongs to.
	if _, err := s.visibleRecipe(ctx, review.RecipeID.String(), viewer); err != nil {
		return domain.ReviewResponse{}, domain.ErrReviewNotFound
	}

	return toReviewResponse(review, viewer), nil
}

func (s *reviewService) GetRecipeReviews(ctx context.Context, recipeID string, page, limit int, viewer auth.Identity) (domain.ReviewListResponse, error) {
	target, err := s.visibleRecipe(ctx, recipeID, viewer)
	if err != nil {
		return domain.ReviewListResponse{}, err
	}
	page, limit = domain.NormalizePagination(page, limit)

	reviews, count, err := s.reviewRepository.GetReviewsByRecipe(ctx, target.ID, page, limit)
	if err != nil {
		return domain.ReviewListResponse{}, err
	}

	res := domain.ReviewListResponse{
		Reviews:    make([]domain.ReviewResponse, 0, len(reviews)),
		Pagination: domain.NewPagination(page, limit, count),
	}
	for _, rv := range reviews {
		res.Reviews = append(res.Reviews, toReviewResponse(rv, viewer))
	}
	return res, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id string, req domain.UpdateReviewRequest, actor auth.Identity) (domain.ReviewResponse, error) {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrReviewNotFound
		}
		return domain.ReviewResponse{}, err
	}
	if err := actor.RequireModify(review.UserID); err != nil {
		return domain.ReviewResponse{}, err
	}

	if req.Rating != 0 {
		if req.Rating < domain.RatingMin || req.Rating > domain.RatingMax {
			return domain.ReviewResponse{}, domain.ErrRatingOutOfRange
		}
		review.Rating = req.Rating
	}
	if req.Feedback != "" {
		review.Feedback = req.Feedback
	}

	if err := s.reviewRepository.UpdateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}
	return toReviewResponse(review, actor), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string, actor auth.Identity) error {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}
	if err := actor.RequireModify(review.UserID); err != nil {
		return err
	}
	return s.reviewRepository.DeleteReview(ctx, review.ID)
}

func (s *reviewService) visibleRecipe(ctx context.Context, id string, viewer auth.Identity) (*entities.Recipe, error) {
	target, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if !viewer.CanSee(target.Status, target.UserID) {
		return nil, domain.ErrRecipeNotFound
	}
	return target, nil
}

func toReviewResponse(review *entities.Review, viewer auth.Identity) domain.ReviewResponse {
	return domain.ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		RecipeID:  review.RecipeID.String(),
		Rating:    review.Rating,
		Feedback:  review.Feedback,
		CreatedAt: review.CreatedAt,
		Links:     hypermedia.ReviewLinks(review, viewer),
	}
}
