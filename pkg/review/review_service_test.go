package review

import (
	"context"
	"testing"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/moderation"
	"cookbook-backend/pkg/recipe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReviewRepository struct {
	reviews map[uuid.UUID]*entities.Review
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{reviews: map[uuid.UUID]*entities.Review{}}
}

func (f *fakeReviewRepository) CreateReview(_ context.Context, r *entities.Review) error {
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepository) GetReviewByID(_ context.Context, id string) (*entities.Review, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := f.reviews[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepository) GetReviewByUserAndRecipe(_ context.Context, userID, recipeID uuid.UUID) (*entities.Review, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.RecipeID == recipeID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepository) GetReviewsByRecipe(_ context.Context, recipeID uuid.UUID, page, limit int) ([]*entities.Review, int64, error) {
	var out []*entities.Review
	for _, r := range f.reviews {
		if r.RecipeID == recipeID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepository) UpdateReview(_ context.Context, r *entities.Review) error {
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepository) DeleteReview(_ context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	return nil
}

// fakeRecipeStore only answers the lookup the review service needs; the
// embedded interface keeps the rest of the contract satisfied.
type fakeRecipeStore struct {
	recipe.RecipeRepository
	recipes map[uuid.UUID]*entities.Recipe
}

func newFakeRecipeStore() *fakeRecipeStore {
	return &fakeRecipeStore{recipes: map[uuid.UUID]*entities.Recipe{}}
}

func (f *fakeRecipeStore) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := f.recipes[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecipeStore) seed(status string, owner uuid.UUID) *entities.Recipe {
	r := &entities.Recipe{ID: uuid.New(), UserID: owner, Status: status}
	f.recipes[r.ID] = r
	return r
}

func TestCreateReview(t *testing.T) {
	recipes := newFakeRecipeStore()
	approved := recipes.seed(moderation.StatusApproved, uuid.New())
	svc := NewReviewService(newFakeReviewRepository(), recipes)

	reviewer := uuid.New()
	res, err := svc.CreateReview(context.Background(), approved.ID.String(),
		domain.CreateReviewRequest{Rating: 4, Feedback: "Solid."}, auth.Regular(reviewer))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Rating)
	assert.Equal(t, reviewer.String(), res.UserID)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	recipes := newFakeRecipeStore()
	approved := recipes.seed(moderation.StatusApproved, uuid.New())
	svc := NewReviewService(newFakeReviewRepository(), recipes)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(context.Background(), approved.ID.String(),
			domain.CreateReviewRequest{Rating: rating}, auth.Regular(uuid.New()))
		assert.ErrorIs(t, err, domain.ErrRatingOutOfRange, "rating %d", rating)
	}
}

func TestCreateReviewOncePerUserAndRecipe(t *testing.T) {
	recipes := newFakeRecipeStore()
	approved := recipes.seed(moderation.StatusApproved, uuid.New())
	svc := NewReviewService(newFakeReviewRepository(), recipes)

	reviewer := auth.Regular(uuid.New())
	_, err := svc.CreateReview(context.Background(), approved.ID.String(),
		domain.CreateReviewRequest{Rating: 5}, reviewer)
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), approved.ID.String(),
		domain.CreateReviewRequest{Rating: 3}, reviewer)
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)

	// A different user may still review.
	_, err = svc.CreateReview(context.Background(), approved.ID.String(),
		domain.CreateReviewRequest{Rating: 3}, auth.Regular(uuid.New()))
	assert.NoError(t, err)
}

func TestCreateReviewOnPendingRecipe(t *testing.T) {
	recipes := newFakeRecipeStore()
	owner := uuid.New()
	pending := recipes.seed(moderation.StatusPending, owner)
	svc := NewReviewService(newFakeReviewRepository(), recipes)

	// Invisible to strangers, not reviewable even by its owner.
	_, err := svc.CreateReview(context.Background(), pending.ID.String(),
		domain.CreateReviewRequest{Rating: 5}, auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = svc.CreateReview(context.Background(), pending.ID.String(),
		domain.CreateReviewRequest{Rating: 5}, auth.Regular(owner))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateReviewAnonymousUnauthorized(t *testing.T) {
	recipes := newFakeRecipeStore()
	approved := recipes.seed(moderation.StatusApproved, uuid.New())
	svc := NewReviewService(newFakeReviewRepository(), recipes)

	_, err := svc.CreateReview(context.Background(), approved.ID.String(),
		domain.CreateReviewRequest{Rating: 5}, auth.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateReviewOwnerOnly(t *testing.T) {
	recipes := newFakeRecipeStore()
	approved := recipes.seed(moderation.StatusApproved, uuid.New())
	reviewRepo := newFakeReviewRepository()
	svc := NewReviewService(reviewRepo, recipes)

	author := uuid.New()
	created, err := svc.CreateReview(context.Background(), approved.ID.String(),
		domain.CreateReviewRequest{Rating: 2}, auth.Regular(author))
	require.NoError(t, err)

	_, err = svc.UpdateReview(context.Background(), created.ID,
		domain.UpdateReviewRequest{Rating: 5}, auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err := svc.UpdateReview(context.Background(), created.ID,
		domain.UpdateReviewRequest{Rating: 5}, auth.Regular(author))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rating)

	_, err = svc.UpdateReview(context.Background(), created.ID,
		domain.UpdateReviewRequest{Rating: 9}, auth.Regular(author))
	assert.ErrorIs(t, err, domain.ErrRatingOutOfRange)
}

func TestDeleteReviewModeratorOverride(t *testing.T) {
	recipes := newFakeRecipeStore()
	approved := recipes.seed(moderation.StatusApproved, uuid.New())
	reviewRepo := newFakeReviewRepository()
	svc := NewReviewService(reviewRepo, recipes)

	created, err := svc.CreateReview(context.Background(), approved.ID.String(),
		domain.CreateReviewRequest{Rating: 1, Feedback: "spam"}, auth.Regular(uuid.New()))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteReview(context.Background(), created.ID, auth.Regular(uuid.New())), domain.ErrForbidden)
	require.NoError(t, svc.DeleteReview(context.Background(), created.ID, auth.Moderator(uuid.New())))
	assert.Empty(t, reviewRepo.reviews)
}

func TestGetRecipeReviewsVisibility(t *testing.T) {
	recipes := newFakeRecipeStore()
	owner := uuid.New()
	pending := recipes.seed(moderation.StatusPending, owner)
	svc := NewReviewService(newFakeReviewRepository(), recipes)

	_, err := svc.GetRecipeReviews(context.Background(), pending.ID.String(), 1, 20, auth.Anonymous())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	res, err := svc.GetRecipeReviews(context.Background(), pending.ID.String(), 1, 20, auth.Regular(owner))
	require.NoError(t, err)
	assert.Empty(t, res.Reviews)
}
