package ingredient

import (
	"context"
	"testing"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/moderation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIngredientRepository struct {
	ingredients map[uuid.UUID]*entities.Ingredient
	deleted     []uuid.UUID
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{ingredients: map[uuid.UUID]*entities.Ingredient{}}
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ing *entities.Ingredient) error {
	cp := *ing
	f.ingredients[ing.ID] = &cp
	return nil
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	ing, ok := f.ingredients[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ing
	return &cp, nil
}

func (f *fakeIngredientRepository) GetIngredientByName(_ context.Context, name string) (*entities.Ingredient, error) {
	for _, ing := range f.ingredients {
		if ing.Name == name {
			cp := *ing
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, status string, page, limit int) ([]*entities.Ingredient, int64, error) {
	var out []*entities.Ingredient
	for _, ing := range f.ingredients {
		if status == "" || ing.Status == status {
			cp := *ing
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeIngredientRepository) UpdateIngredient(_ context.Context, ing *entities.Ingredient) error {
	cp := *ing
	f.ingredients[ing.ID] = &cp
	return nil
}

func (f *fakeIngredientRepository) DeleteIngredientCascade(_ context.Context, id uuid.UUID) error {
	delete(f.ingredients, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeIngredientRepository) seed(name, status string, approver *uuid.UUID) *entities.Ingredient {
	ing := &entities.Ingredient{
		ID:         uuid.New(),
		Name:       name,
		Status:     status,
		ApproverID: approver,
	}
	f.ingredients[ing.ID] = ing
	return ing
}

func TestCreateIngredientStartsPending(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	res, err := svc.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "saffron"}, auth.Regular(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, res.Status)
	assert.Empty(t, res.ApproverID)
}

func TestCreateIngredientRequiresAuthentication(t *testing.T) {
	svc := NewIngredientService(newFakeIngredientRepository(), moderation.DefaultPolicy)

	_, err := svc.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "saffron"}, auth.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateIngredientDuplicateName(t *testing.T) {
	repo := newFakeIngredientRepository()
	repo.seed("saffron", moderation.StatusApproved, nil)
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	_, err := svc.CreateIngredient(context.Background(), domain.CreateIngredientRequest{Name: "saffron"}, auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrDuplicateEntity)
}

func TestGetIngredientHidesPendingFromPublic(t *testing.T) {
	repo := newFakeIngredientRepository()
	pending := repo.seed("saffron", moderation.StatusPending, nil)
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	_, err := svc.GetIngredient(context.Background(), pending.ID.String(), auth.Anonymous())
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	res, err := svc.GetIngredient(context.Background(), pending.ID.String(), auth.Moderator(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, res.Status)
}

func TestApproveIngredientStampsApprover(t *testing.T) {
	repo := newFakeIngredientRepository()
	pending := repo.seed("saffron", moderation.StatusPending, nil)
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	mod := uuid.New()
	res, err := svc.ApproveIngredient(context.Background(), pending.ID.String(), auth.Moderator(mod))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusApproved, res.Status)
	assert.Equal(t, mod.String(), res.ApproverID)
}

func TestApproveIngredientForbiddenForRegular(t *testing.T) {
	repo := newFakeIngredientRepository()
	pending := repo.seed("saffron", moderation.StatusPending, nil)
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	_, err := svc.ApproveIngredient(context.Background(), pending.ID.String(), auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateIngredientNameResetsApproval(t *testing.T) {
	repo := newFakeIngredientRepository()
	mod := uuid.New()
	approved := repo.seed("safron", moderation.StatusApproved, &mod)
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	res, err := svc.UpdateIngredient(context.Background(), approved.ID.String(),
		domain.UpdateIngredientRequest{Name: "saffron"}, auth.Moderator(mod))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, res.Status)
	assert.Empty(t, res.ApproverID)
}

func TestDeleteIngredientModeratorOnly(t *testing.T) {
	repo := newFakeIngredientRepository()
	ing := repo.seed("saffron", moderation.StatusApproved, nil)
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	assert.ErrorIs(t, svc.DeleteIngredient(context.Background(), ing.ID.String(), auth.Regular(uuid.New())), domain.ErrForbidden)

	require.NoError(t, svc.DeleteIngredient(context.Background(), ing.ID.String(), auth.Moderator(uuid.New())))
	assert.Equal(t, []uuid.UUID{ing.ID}, repo.deleted)
}

func TestGetIngredientsStatusFilterForbiddenForPublic(t *testing.T) {
	repo := newFakeIngredientRepository()
	svc := NewIngredientService(repo, moderation.DefaultPolicy)

	_, err := svc.GetIngredients(context.Background(), moderation.StatusPending, 1, 20, auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.GetIngredients(context.Background(), "draft", 1, 20, auth.Moderator(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}
