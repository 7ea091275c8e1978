package recipe

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

type fakeRecipeRepository struct {
	recipes     map[uuid.UUID]*entities.Recipe
	ingredients map[uuid.UUID]*entities.Ingredient
	cuisines    map[uuid.UUID]bool
	facts       map[uuid.UUID]bool
	qtys        map[uuid.UUID]map[uuid.UUID]*entities.RecipeIngredientQty
	cuisineLnk  map[uuid.UUID]map[uuid.UUID]bool
	factLnk     map[uuid.UUID]map[uuid.UUID]bool
	lastQuery   ListQuery
	deleted     []uuid.UUID
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes:     map[uuid.UUID]*entities.Recipe{},
		ingredients: map[uuid.UUID]*entities.Ingredient{},
		cuisines:    map[uuid.UUID]bool{},
		facts:       map[uuid.UUID]bool{},
		qtys:        map[uuid.UUID]map[uuid.UUID]*entities.RecipeIngredientQty{},
		cuisineLnk:  map[uuid.UUID]map[uuid.UUID]bool{},
		factLnk:     map[uuid.UUID]map[uuid.UUID]bool{},
	}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, r *entities.Recipe) error {
	cp := *r
	f.recipes[r.ID] = &cp
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
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

func (f *fakeRecipeRepository) GetRecipeDetail(ctx context.Context, id string) (*entities.Recipe, error) {
	return f.GetRecipeByID(ctx, id)
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, query ListQuery, page, limit int) ([]*entities.Recipe, int64, error) {
	f.lastQuery = query
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if query.Status != "" && r.Status != query.Status {
			continue
		}
		if query.OwnerID != nil && r.UserID != *query.OwnerID {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, r *entities.Recipe) error {
	cp := *r
	f.recipes[r.ID] = &cp
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipeCascade(_ context.Context, id uuid.UUID) error {
	delete(f.recipes, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRecipeRepository) IngredientExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.ingredients[id]
	return ok, nil
}

func (f *fakeRecipeRepository) AddIngredientQty(_ context.Context, q *entities.RecipeIngredientQty) error {
	if f.qtys[q.RecipeID] == nil {
		f.qtys[q.RecipeID] = map[uuid.UUID]*entities.RecipeIngredientQty{}
	}
	cp := *q
	cp.Ingredient = f.ingredients[q.IngredientID]
	f.qtys[q.RecipeID][q.IngredientID] = &cp
	return nil
}

func (f *fakeRecipeRepository) GetIngredientQty(_ context.Context, recipeID, ingredientID uuid.UUID) (*entities.RecipeIngredientQty, error) {
	q, ok := f.qtys[recipeID][ingredientID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeRecipeRepository) GetIngredientQtys(_ context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredientQty, error) {
	var out []*entities.RecipeIngredientQty
	for _, q := range f.qtys[recipeID] {
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRecipeRepository) UpdateIngredientQty(_ context.Context, q *entities.RecipeIngredientQty) error {
	cp := *q
	f.qtys[q.RecipeID][q.IngredientID] = &cp
	return nil
}

func (f *fakeRecipeRepository) DeleteIngredientQty(_ context.Context, recipeID, ingredientID uuid.UUID) error {
	delete(f.qtys[recipeID], ingredientID)
	return nil
}

func (f *fakeRecipeRepository) CuisineExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.cuisines[id], nil
}

func (f *fakeRecipeRepository) AddCuisineLink(_ context.Context, link *entities.RecipeCuisine) error {
	if f.cuisineLnk[link.RecipeID] == nil {
		f.cuisineLnk[link.RecipeID] = map[uuid.UUID]bool{}
	}
	f.cuisineLnk[link.RecipeID][link.CuisineID] = true
	return nil
}

func (f *fakeRecipeRepository) CuisineLinked(_ context.Context, recipeID, cuisineID uuid.UUID) (bool, error) {
	return f.cuisineLnk[recipeID][cuisineID], nil
}

func (f *fakeRecipeRepository) DeleteCuisineLink(_ context.Context, recipeID, cuisineID uuid.UUID) error {
	delete(f.cuisineLnk[recipeID], cuisineID)
	return nil
}

func (f *fakeRecipeRepository) NutritionFactExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.facts[id], nil
}

func (f *fakeRecipeRepository) AddNutritionLink(_ context.Context, link *entities.RecipeNutrition) error {
	if f.factLnk[link.RecipeID] == nil {
		f.factLnk[link.RecipeID] = map[uuid.UUID]bool{}
	}
	f.factLnk[link.RecipeID][link.NutritionFactID] = true
	return nil
}

func (f *fakeRecipeRepository) NutritionLinked(_ context.Context, recipeID, factID uuid.UUID) (bool, error) {
	return f.factLnk[recipeID][factID], nil
}

func (f *fakeRecipeRepository) DeleteNutritionLink(_ context.Context, recipeID, factID uuid.UUID) error {
	delete(f.factLnk[recipeID], factID)
	return nil
}

func (f *fakeRecipeRepository) seedRecipe(owner uuid.UUID, status string) *entities.Recipe {
	r := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          owner,
		Title:           "Pancakes",
		Steps:           "Mix and fry.",
		PreparationTime: "10 min",
		CookingTime:     "15 min",
		Serving:         4,
		Status:          status,
	}
	f.recipes[r.ID] = r
	return r
}

func newTestRecipeService(repo RecipeRepository) RecipeService {
	return NewRecipeService(repo, nil, moderation.DefaultPolicy)
}

func TestCreateRecipeStartsPendingOwnedByActor(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := newTestRecipeService(repo)
	author := uuid.New()

	res, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:           "Pancakes",
		Steps:           "Mix and fry.",
		PreparationTime: "10 min",
		CookingTime:     "15 min",
		Serving:         4,
	}, auth.Regular(author))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, res.Status)
	assert.Equal(t, author.String(), res.UserID)
	assert.Empty(t, res.ApproverID)
}

func TestCreateRecipeAnonymousUnauthorized(t *testing.T) {
	svc := newTestRecipeService(newFakeRecipeRepository())

	_, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{Title: "x"}, auth.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetRecipeVisibility(t *testing.T) {
	repo := newFakeRecipeRepository()
	owner := uuid.New()
	pending := repo.seedRecipe(owner, moderation.StatusPending)
	svc := newTestRecipeService(repo)

	// Hidden as not found, not as forbidden, so existence leaks nothing.
	_, err := svc.GetRecipe(context.Background(), pending.ID.String(), auth.Anonymous())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = svc.GetRecipe(context.Background(), pending.ID.String(), auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	res, err := svc.GetRecipe(context.Background(), pending.ID.String(), auth.Regular(owner))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, res.Status)

	_, err = svc.GetRecipe(context.Background(), pending.ID.String(), auth.Moderator(uuid.New()))
	assert.NoError(t, err)
}

func TestUpdateRecipeForbiddenForNonOwner(t *testing.T) {
	repo := newFakeRecipeRepository()
	r := repo.seedRecipe(uuid.New(), moderation.StatusApproved)
	svc := newTestRecipeService(repo)

	_, err := svc.UpdateRecipe(context.Background(), r.ID.String(),
		domain.UpdateRecipeRequest{Title: "Stolen"}, auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateRecipeSubstantiveEditResetsApproval(t *testing.T) {
	repo := newFakeRecipeRepository()
	owner := uuid.New()
	r := repo.seedRecipe(owner, moderation.StatusApproved)
	mod := uuid.New()
	r.ApproverID = &mod
	svc := newTestRecipeService(repo)

	res, err := svc.UpdateRecipe(context.Background(), r.ID.String(),
		domain.UpdateRecipeRequest{Steps: "Mix, rest, fry."}, auth.Regular(owner))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, res.Status)
	assert.Empty(t, res.ApproverID)
}

func TestUpdateRecipeNoChangeKeepsApproval(t *testing.T) {
	repo := newFakeRecipeRepository()
	owner := uuid.New()
	r := repo.seedRecipe(owner, moderation.StatusApproved)
	svc := newTestRecipeService(repo)

	// Same title as stored: nothing actually changes.
	res, err := svc.UpdateRecipe(context.Background(), r.ID.String(),
		domain.UpdateRecipeRequest{Title: r.Title}, auth.Regular(owner))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusApproved, res.Status)
}

func TestApproveRecipe(t *testing.T) {
	repo := newFakeRecipeRepository()
	r := repo.seedRecipe(uuid.New(), moderation.StatusPending)
	svc := newTestRecipeService(repo)

	_, err := svc.ApproveRecipe(context.Background(), r.ID.String(), auth.Regular(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	mod := uuid.New()
	res, err := svc.ApproveRecipe(context.Background(), r.ID.String(), auth.Moderator(mod))
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusApproved, res.Status)
	assert.Equal(t, mod.String(), res.ApproverID)
}

func TestGetRecipesScopesNonApprovedToOwnRecipes(t *testing.T) {
	repo := newFakeRecipeRepository()
	viewer := uuid.New()
	repo.seedRecipe(viewer, moderation.StatusPending)
	repo.seedRecipe(uuid.New(), moderation.StatusPending)
	svc := newTestRecipeService(repo)

	res, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{Status: "pending"}, 1, 20, auth.Regular(viewer))
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, viewer.String(), res.Recipes[0].UserID)

	// A moderator's pending listing is unscoped.
	res, err = svc.GetRecipes(context.Background(), domain.RecipeFilter{Status: "pending"}, 1, 20, auth.Moderator(uuid.New()))
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 2)
}

func TestGetRecipesOtherOwnersUnpublishedForbidden(t *testing.T) {
	repo := newFakeRecipeRepository()
	other := uuid.New()
	repo.seedRecipe(other, moderation.StatusPending)
	svc := newTestRecipeService(repo)

	viewer := auth.Regular(uuid.New())
	for _, status := range []string{"all", "pending", "rejected"} {
		_, err := svc.GetRecipes(context.Background(),
			domain.RecipeFilter{Status: status, OwnerID: other.String()}, 1, 20, viewer)
		assert.ErrorIs(t, err, domain.ErrForbidden, "status %s", status)
	}

	// Filtering on your own id is fine, and a moderator may name anyone.
	_, err := svc.GetRecipes(context.Background(),
		domain.RecipeFilter{Status: "all", OwnerID: viewer.UserID.String()}, 1, 20, viewer)
	assert.NoError(t, err)

	res, err := svc.GetRecipes(context.Background(),
		domain.RecipeFilter{Status: "pending", OwnerID: other.String()}, 1, 20, auth.Moderator(uuid.New()))
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 1)
}

func TestGetRecipesAnonymousPendingUnauthorized(t *testing.T) {
	svc := newTestRecipeService(newFakeRecipeRepository())

	_, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{Status: "pending"}, 1, 20, auth.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetRecipesDefaultsToApproved(t *testing.T) {
	repo := newFakeRecipeRepository()
	repo.seedRecipe(uuid.New(), moderation.StatusApproved)
	repo.seedRecipe(uuid.New(), moderation.StatusPending)
	svc := newTestRecipeService(repo)

	res, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{}, 1, 20, auth.Anonymous())
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 1)
	assert.Equal(t, moderation.StatusApproved, repo.lastQuery.Status)
}

func TestGetRecipesClampsPagination(t *testing.T) {
	repo := newFakeRecipeRepository()
	svc := newTestRecipeService(repo)

	res, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{}, 0, 5000, auth.Anonymous())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, domain.MaxPageSize, res.Pagination.Limit)
}

func TestAddRecipeIngredient(t *testing.T) {
	repo := newFakeRecipeRepository()
	owner := uuid.New()
	r := repo.seedRecipe(owner, moderation.StatusApproved)
	ing := &entities.Ingredient{ID: uuid.New(), Name: "flour"}
	repo.ingredients[ing.ID] = ing
	svc := newTestRecipeService(repo)

	res, err := svc.AddRecipeIngredient(context.Background(), r.ID.String(),
		domain.AddRecipeIngredientRequest{IngredientID: ing.ID.String(), Qty: 200, Metric: "g"},
		auth.Regular(owner))
	require.NoError(t, err)
	assert.Equal(t, "flour", res.Name)
	assert.Equal(t, 200.0, res.Qty)

	// Same pair again is a conflict.
	_, err = svc.AddRecipeIngredient(context.Background(), r.ID.String(),
		domain.AddRecipeIngredientRequest{IngredientID: ing.ID.String(), Qty: 100, Metric: "g"},
		auth.Regular(owner))
	assert.ErrorIs(t, err, domain.ErrDuplicateEntity)
}

func TestAddRecipeIngredientUnknownReference(t *testing.T) {
	repo := newFakeRecipeRepository()
	owner := uuid.New()
	r := repo.seedRecipe(owner, moderation.StatusApproved)
	svc := newTestRecipeService(repo)

	_, err := svc.AddRecipeIngredient(context.Background(), r.ID.String(),
		domain.AddRecipeIngredientRequest{IngredientID: uuid.NewString(), Qty: 1, Metric: "g"},
		auth.Regular(owner))
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestAddRecipeCuisineDuplicateAndMissing(t *testing.T) {
	repo := newFakeRecipeRepository()
	owner := uuid.New()
	r := repo.seedRecipe(owner, moderation.StatusApproved)
	cuisineID := uuid.New()
	repo.cuisines[cuisineID] = true
	svc := newTestRecipeService(repo)

	req := domain.AddRecipeCuisineRequest{CuisineID: cuisineID.String()}
	require.NoError(t, svc.AddRecipeCuisine(context.Background(), r.ID.String(), req, auth.Regular(owner)))
	assert.ErrorIs(t, svc.AddRecipeCuisine(context.Background(), r.ID.String(), req, auth.Regular(owner)), domain.ErrDuplicateEntity)

	missing := domain.AddRecipeCuisineRequest{CuisineID: uuid.NewString()}
	assert.ErrorIs(t, svc.AddRecipeCuisine(context.Background(), r.ID.String(), missing, auth.Regular(owner)), domain.ErrReferenceNotFound)
}

func TestDeleteRecipeOwnerAndModerator(t *testing.T) {
	repo := newFakeRecipeRepository()
	owner := uuid.New()
	r := repo.seedRecipe(owner, moderation.StatusApproved)
	svc := newTestRecipeService(repo)

	assert.ErrorIs(t, svc.DeleteRecipe(context.Background(), r.ID.String(), auth.Regular(uuid.New())), domain.ErrForbidden)

	require.NoError(t, svc.DeleteRecipe(context.Background(), r.ID.String(), auth.Regular(owner)))
	assert.Equal(t, []uuid.UUID{r.ID}, repo.deleted)
}
