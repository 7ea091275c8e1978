package recipe

import (
	"context"
	"errors"
	"fmt"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/internal/utils/storage"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/hypermedia"
	"cookbook-backend/pkg/moderation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, actor auth.Identity) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id string, viewer auth.Identity) (domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, viewer auth.Identity) (domain.RecipeDetailResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, viewer auth.Identity) (domain.RecipeListResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, actor auth.Identity) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, actor auth.Identity) error
		ApproveRecipe(ctx context.Context, id string, actor auth.Identity) (domain.RecipeResponse, error)
		RejectRecipe(ctx context.Context, id string, actor auth.Identity) (domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, actor auth.Identity) (domain.RecipeResponse, error)

		GetRecipeIngredients(ctx context.Context, recipeID string, viewer auth.Identity) ([]domain.RecipeIngredientResponse, error)
		AddRecipeIngredient(ctx context.Context, recipeID string, req domain.AddRecipeIngredientRequest, actor auth.Identity) (domain.RecipeIngredientResponse, error)
		UpdateRecipeIngredient(ctx context.Context, recipeID, ingredientID string, req domain.UpdateRecipeIngredientRequest, actor auth.Identity) (domain.RecipeIngredientResponse, error)
		RemoveRecipeIngredient(ctx context.Context, recipeID, ingredientID string, actor auth.Identity) error

		AddRecipeCuisine(ctx context.Context, recipeID string, req domain.AddRecipeCuisineRequest, actor auth.Identity) error
		RemoveRecipeCuisine(ctx context.Context, recipeID, cuisineID string, actor auth.Identity) error
		AddRecipeNutrition(ctx context.Context, recipeID string, req domain.AddRecipeNutritionRequest, actor auth.Identity) error
		RemoveRecipeNutrition(ctx context.Context, recipeID, factID string, actor auth.Identity) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		awsS3            storage.AwsS3
		policy           moderation.Policy
	}
)

func NewRecipeService(recipeRepository RecipeRepository, awsS3 storage.AwsS3, policy moderation.Policy) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		awsS3:            awsS3,
		policy:           policy,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, actor auth.Identity) (domain.RecipeResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.RecipeResponse{}, err
	}

	state := moderation.Submit()
	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          actor.UserID,
		Title:           req.Title,
		Description:     req.Description,
		Steps:           req.Steps,
		PreparationTime: req.PreparationTime,
		CookingTime:     req.CookingTime,
		Serving:         req.Serving,
		Status:          state.Status,
		ApproverID:      state.ApproverID,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe, actor), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id string, viewer auth.Identity) (domain.RecipeResponse, error) {
	recipe, err := s.getVisible(ctx, id, viewer)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe, viewer), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, viewer auth.Identity) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}
	if !viewer.CanSee(recipe.Status, recipe.UserID) {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
	}

	res := domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe, viewer),
		Ingredients:    make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients)),
		Cuisines:       make([]domain.CuisineResponse, 0, len(recipe.Cuisines)),
		Nutrition:      make([]domain.NutritionFactResponse, 0, len(recipe.Nutrition)),
		Reviews:        make([]domain.RecipeReviewResponse, 0, len(recipe.Reviews)),
	}
	for _, q := range recipe.Ingredients {
		res.Ingredients = append(res.Ingredients, toRecipeIngredientResponse(q, recipe.UserID, viewer))
	}
	for _, rc := range recipe.Cuisines {
		c := rc.Cuisine
		if c == nil {
			continue
		}
		res.Cuisines = append(res.Cuisines, domain.CuisineResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt,
			Links:       hypermedia.CuisineLinks(c, viewer),
		})
	}
	for _, rn := range recipe.Nutrition {
		n := rn.NutritionFact
		if n == nil {
			continue
		}
		res.Nutrition = append(res.Nutrition, domain.NutritionFactResponse{
			ID:        n.ID.String(),
			Name:      n.Name,
			Benefits:  n.Benefits,
			Status:    n.Status,
			CreatedAt: n.CreatedAt,
			Links:     hypermedia.NutritionFactLinks(n, viewer),
		})
	}
	for _, rv := range recipe.Reviews {
		review := domain.RecipeReviewResponse{
			ID:       rv.ID.String(),
			Rating:   rv.Rating,
			Feedback: rv.Feedback,
		}
		if rv.User != nil {
			review.Username = rv.User.Username
		}
		res.Reviews = append(res.Reviews, review)
	}
	return res, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, viewer auth.Identity) (domain.RecipeListResponse, error) {
	query, err := s.buildListQuery(filter, viewer)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	page, limit = domain.NormalizePagination(page, limit)

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, query, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	res := domain.RecipeListResponse{
		Recipes:    make([]domain.RecipeResponse, 0, len(recipes)),
		Pagination: domain.NewPagination(page, limit, count),
		Links:      hypermedia.RecipeCollectionLinks(viewer),
	}
	for _, r := range recipes {
		res.Recipes = append(res.Recipes, toRecipeResponse(r, viewer))
	}
	return res, nil
}

// buildListQuery narrows a requested filter to what the viewer may see.
// Non-moderators asking for anything beyond approved content get the scope
// forced to their own recipes; anonymous callers only ever see approved ones.
func (s *recipeService) buildListQuery(filter domain.RecipeFilter, viewer auth.Identity) (ListQuery, error) {
	query := ListQuery{}

	if filter.IngredientID != "" {
		id, err := uuid.Parse(filter.IngredientID)
		if err != nil {
			return ListQuery{}, domain.ValidationFailed("ingredient_id")
		}
		query.IngredientID = &id
	}
	if filter.CuisineID != "" {
		id, err := uuid.Parse(filter.CuisineID)
		if err != nil {
			return ListQuery{}, domain.ValidationFailed("cuisine_id")
		}
		query.CuisineID = &id
	}
	if filter.OwnerID != "" {
		id, err := uuid.Parse(filter.OwnerID)
		if err != nil {
			return ListQuery{}, domain.ValidationFailed("owner_id")
		}
		query.OwnerID = &id
	}

	switch filter.Status {
	case "", moderation.StatusApproved:
		query.Status = moderation.StatusApproved
	case "all":
		if err := s.scopeUnpublished(&query, viewer); err != nil {
			return ListQuery{}, err
		}
		query.Status = ""
	case moderation.StatusPending, moderation.StatusRejected:
		if err := s.scopeUnpublished(&query, viewer); err != nil {
			return ListQuery{}, err
		}
		query.Status = filter.Status
	default:
		return ListQuery{}, domain.ValidationFailed("status")
	}

	return query, nil
}

// scopeUnpublished restricts listings that include pending or rejected
// recipes. Moderators see everything; a regular caller is pinned to their
// own recipes, and asking for another user's unpublished listing is denied
// rather than silently answered with a narrower query.
func (s *recipeService) scopeUnpublished(query *ListQuery, viewer auth.Identity) error {
	if viewer.IsModerator() {
		return nil
	}
	if err := viewer.RequireAuthenticated(); err != nil {
		return err
	}
	if query.OwnerID != nil && !viewer.Owns(*query.OwnerID) {
		return domain.ErrForbidden
	}
	owner := viewer.UserID
	query.OwnerID = &owner
	return nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, actor auth.Identity) (domain.RecipeResponse, error) {
	recipe, err := s.getVisible(ctx, id, actor)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return domain.RecipeResponse{}, err
	}

	var changed []string
	if req.Title != "" && req.Title != recipe.Title {
		recipe.Title = req.Title
		changed = append(changed, "title")
	}
	if req.Description != "" && req.Description != recipe.Description {
		recipe.Description = req.Description
		changed = append(changed, "description")
	}
	if req.Steps != "" && req.Steps != recipe.Steps {
		recipe.Steps = req.Steps
		changed = append(changed, "steps")
	}
	if req.PreparationTime != "" && req.PreparationTime != recipe.PreparationTime {
		recipe.PreparationTime = req.PreparationTime
		changed = append(changed, "preparation_time")
	}
	if req.CookingTime != "" && req.CookingTime != recipe.CookingTime {
		recipe.CookingTime = req.CookingTime
		changed = append(changed, "cooking_time")
	}
	if req.Serving != 0 && req.Serving != recipe.Serving {
		recipe.Serving = req.Serving
		changed = append(changed, "serving")
	}

	state, err := s.policy.ApplyEditBy(
		moderation.State{Status: recipe.Status, ApproverID: recipe.ApproverID},
		moderation.AnySubstantive("recipe", changed),
		actor.IsModerator(),
	)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.Status = state.Status
	recipe.ApproverID = state.ApproverID

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe, actor), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, actor auth.Identity) error {
	recipe, err := s.getVisible(ctx, id, actor)
	if err != nil {
		return err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipeCascade(ctx, recipe.ID)
}

func (s *recipeService) ApproveRecipe(ctx context.Context, id string, actor auth.Identity) (domain.RecipeResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Approve)
}

func (s *recipeService) RejectRecipe(ctx context.Context, id string, actor auth.Identity) (domain.RecipeResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Reject)
}

func (s *recipeService) moderate(ctx context.Context, id string, actor auth.Identity, decide func(uuid.UUID) moderation.State) (domain.RecipeResponse, error) {
	if err := actor.RequireModerator(); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	state := decide(actor.UserID)
	recipe.Status = state.Status
	recipe.ApproverID = state.ApproverID

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe, actor), nil
}

// UploadRecipeImage stores the image on S3 and records its public URL. The
// image is presentation metadata, so a fresh upload never voids an approval.
func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, actor auth.Identity) (domain.RecipeResponse, error) {
	recipe, err := s.getVisible(ctx, req.RecipeID, actor)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return domain.RecipeResponse{}, err
	}

	key := fmt.Sprintf("recipes/%s/%s", recipe.ID, req.Image.Filename)
	url, err := s.awsS3.UploadFile(ctx, key, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrStorageUnavailable
	}

	recipe.ImageURL = url
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe, actor), nil
}

func (s *recipeService) GetRecipeIngredients(ctx context.Context, recipeID string, viewer auth.Identity) ([]domain.RecipeIngredientResponse, error) {
	recipe, err := s.getVisible(ctx, recipeID, viewer)
	if err != nil {
		return nil, err
	}

	qtys, err := s.recipeRepository.GetIngredientQtys(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeIngredientResponse, 0, len(qtys))
	for _, q := range qtys {
		res = append(res, toRecipeIngredientResponse(q, recipe.UserID, viewer))
	}
	return res, nil
}

func (s *recipeService) AddRecipeIngredient(ctx context.Context, recipeID string, req domain.AddRecipeIngredientRequest, actor auth.Identity) (domain.RecipeIngredientResponse, error) {
	recipe, err := s.getVisible(ctx, recipeID, actor)
	if err != nil {
		return domain.RecipeIngredientResponse{}, err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return domain.RecipeIngredientResponse{}, err
	}

	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.RecipeIngredientResponse{}, domain.ValidationFailed("ingredient_id")
	}

	exists, err := s.recipeRepository.IngredientExists(ctx, ingredientID)
	if err != nil {
		return domain.RecipeIngredientResponse{}, err
	}
	if !exists {
		return domain.RecipeIngredientResponse{}, domain.ReferenceNotFound("ingredient", req.IngredientID)
	}

	if _, err := s.recipeRepository.GetIngredientQty(ctx, recipe.ID, ingredientID); err == nil {
		return domain.RecipeIngredientResponse{}, domain.DuplicateEntity("ingredient_id")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecipeIngredientResponse{}, err
	}

	qty := &entities.RecipeIngredientQty{
		ID:           uuid.New(),
		RecipeID:     recipe.ID,
		IngredientID: ingredientID,
		Qty:          req.Qty,
		Metric:       req.Metric,
	}
	if err := s.recipeRepository.AddIngredientQty(ctx, qty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeIngredientResponse{}, domain.DuplicateEntity("ingredient_id")
		}
		return domain.RecipeIngredientResponse{}, err
	}

	saved, err := s.recipeRepository.GetIngredientQty(ctx, recipe.ID, ingredientID)
	if err != nil {
		return domain.RecipeIngredientResponse{}, err
	}
	return toRecipeIngredientResponse(saved, recipe.UserID, actor), nil
}

func (s *recipeService) UpdateRecipeIngredient(ctx context.Context, recipeID, ingredientID string, req domain.UpdateRecipeIngredientRequest, actor auth.Identity) (domain.RecipeIngredientResponse, error) {
	recipe, err := s.getVisible(ctx, recipeID, actor)
	if err != nil {
		return domain.RecipeIngredientResponse{}, err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return domain.RecipeIngredientResponse{}, err
	}

	ingID, err := uuid.Parse(ingredientID)
	if err != nil {
		return domain.RecipeIngredientResponse{}, domain.ValidationFailed("ingredient_id")
	}

	qty, err := s.recipeRepository.GetIngredientQty(ctx, recipe.ID, ingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeIngredientResponse{}, domain.ReferenceNotFound("ingredient", ingredientID)
		}
		return domain.RecipeIngredientResponse{}, err
	}

	if req.Qty != 0 {
		qty.Qty = req.Qty
	}
	if req.Metric != "" {
		qty.Metric = req.Metric
	}

	if err := s.recipeRepository.UpdateIngredientQty(ctx, qty); err != nil {
		return domain.RecipeIngredientResponse{}, err
	}
	return toRecipeIngredientResponse(qty, recipe.UserID, actor), nil
}

func (s *recipeService) RemoveRecipeIngredient(ctx context.Context, recipeID, ingredientID string, actor auth.Identity) error {
	recipe, err := s.getVisible(ctx, recipeID, actor)
	if err != nil {
		return err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return err
	}

	ingID, err := uuid.Parse(ingredientID)
	if err != nil {
		return domain.ValidationFailed("ingredient_id")
	}

	if _, err := s.recipeRepository.GetIngredientQty(ctx, recipe.ID, ingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReferenceNotFound("ingredient", ingredientID)
		}
		return err
	}

	return s.recipeRepository.DeleteIngredientQty(ctx, recipe.ID, ingID)
}

func (s *recipeService) AddRecipeCuisine(ctx context.Context, recipeID string, req domain.AddRecipeCuisineRequest, actor auth.Identity) error {
	recipe, err := s.getVisible(ctx, recipeID, actor)
	if err != nil {
		return err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return err
	}

	cuisineID, err := uuid.Parse(req.CuisineID)
	if err != nil {
		return domain.ValidationFailed("cuisine_id")
	}

	exists, err := s.recipeRepository.CuisineExists(ctx, cuisineID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ReferenceNotFound("cuisine", req.CuisineID)
	}

	linked, err := s.recipeRepository.CuisineLinked(ctx, recipe.ID, cuisineID)
	if err != nil {
		return err
	}
	if linked {
		return domain.DuplicateEntity("cuisine_id")
	}

	link := &entities.RecipeCuisine{
		ID:        uuid.New(),
		RecipeID:  recipe.ID,
		CuisineID: cuisineID,
	}
	if err := s.recipeRepository.AddCuisineLink(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.DuplicateEntity("cuisine_id")
		}
		return err
	}
	return nil
}

func (s *recipeService) RemoveRecipeCuisine(ctx context.Context, recipeID, cuisineID string, actor auth.Identity) error {
	recipe, err := s.getVisible(ctx, recipeID, actor)
	if err != nil {
		return err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return err
	}

	cID, err := uuid.Parse(cuisineID)
	if err != nil {
		return domain.ValidationFailed("cuisine_id")
	}

	linked, err := s.recipeRepository.CuisineLinked(ctx, recipe.ID, cID)
	if err != nil {
		return err
	}
	if !linked {
		return domain.ReferenceNotFound("cuisine", cuisineID)
	}

	return s.recipeRepository.DeleteCuisineLink(ctx, recipe.ID, cID)
}

func (s *recipeService) AddRecipeNutrition(ctx context.Context, recipeID string, req domain.AddRecipeNutritionRequest, actor auth.Identity) error {
	recipe, err := s.getVisible(ctx, recipeID, actor)
	if err != nil {
		return err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return err
	}

	factID, err := uuid.Parse(req.NutritionFactID)
	if err != nil {
		return domain.ValidationFailed("nutrition_fact_id")
	}

	exists, err := s.recipeRepository.NutritionFactExists(ctx, factID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ReferenceNotFound("nutrition_fact", req.NutritionFactID)
	}

	linked, err := s.recipeRepository.NutritionLinked(ctx, recipe.ID, factID)
	if err != nil {
		return err
	}
	if linked {
		return domain.DuplicateEntity("nutrition_fact_id")
	}

	link := &entities.RecipeNutrition{
		ID:              uuid.New(),
		RecipeID:        recipe.ID,
		NutritionFactID: factID,
	}
	if err := s.recipeRepository.AddNutritionLink(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.DuplicateEntity("nutrition_fact_id")
		}
		return err
	}
	return nil
}

func (s *recipeService) RemoveRecipeNutrition(ctx context.Context, recipeID, factID string, actor auth.Identity) error {
	recipe, err := s.getVisible(ctx, recipeID, actor)
	if err != nil {
		return err
	}
	if err := actor.RequireModify(recipe.UserID); err != nil {
		return err
	}

	fID, err := uuid.Parse(factID)
	if err != nil {
		return domain.ValidationFailed("nutrition_fact_id")
	}

	linked, err := s.recipeRepository.NutritionLinked(ctx, recipe.ID, fID)
	if err != nil {
		return err
	}
	if !linked {
		return domain.ReferenceNotFound("nutrition_fact", factID)
	}

	return s.recipeRepository.DeleteNutritionLink(ctx, recipe.ID, fID)
}

// getVisible fetches a recipe and hides it as not found from viewers who may
// not see its current moderation status.
func (s *recipeService) getVisible(ctx context.Context, id string, viewer auth.Identity) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if !viewer.CanSee(recipe.Status, recipe.UserID) {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func toRecipeResponse(recipe *entities.Recipe, viewer auth.Identity) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		UserID:          recipe.UserID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Steps:           recipe.Steps,
		PreparationTime: recipe.PreparationTime,
		CookingTime:     recipe.CookingTime,
		Serving:         recipe.Serving,
		ImageURL:        recipe.ImageURL,
		Status:          recipe.Status,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
		Links:           hypermedia.RecipeLinks(recipe, viewer),
	}
	if recipe.ApproverID != nil {
		res.ApproverID = recipe.ApproverID.String()
	}
	return res
}

func toRecipeIngredientResponse(q *entities.RecipeIngredientQty, recipeOwner uuid.UUID, viewer auth.Identity) domain.RecipeIngredientResponse {
	res := domain.RecipeIngredientResponse{
		ID:           q.ID.String(),
		IngredientID: q.IngredientID.String(),
		Qty:          q.Qty,
		Metric:       q.Metric,
		Links:        hypermedia.RecipeIngredientLinks(q, recipeOwner, viewer),
	}
	if q.Ingredient != nil {
		res.Name = q.Ingredient.Name
	}
	return res
}
