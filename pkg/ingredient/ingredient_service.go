package ingredient

import (
	"context"
	"errors"

	"cookbook-backend/domain"
	"cookbook-backend/entities"
	"cookbook-backend/pkg/auth"
	"cookbook-backend/pkg/hypermedia"
	"cookbook-backend/pkg/moderation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, actor auth.Identity) (domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, id string, viewer auth.Identity) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, status string, page, limit int, viewer auth.Identity) (domain.IngredientListResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, actor auth.Identity) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string, actor auth.Identity) error
		ApproveIngredient(ctx context.Context, id string, actor auth.Identity) (domain.IngredientResponse, error)
		RejectIngredient(ctx context.Context, id string, actor auth.Identity) (domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		policy               moderation.Policy
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, policy moderation.Policy) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		policy:               policy,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, actor auth.Identity) (domain.IngredientResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.IngredientResponse{}, err
	}

	if _, err := s.ingredientRepository.GetIngredientByName(ctx, req.Name); err == nil {
		return domain.IngredientResponse{}, domain.DuplicateEntity("name")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IngredientResponse{}, err
	}

	state := moderation.Submit()
	ingredient := &entities.Ingredient{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      state.Status,
		ApproverID:  state.ApproverID,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.IngredientResponse{}, domain.DuplicateEntity("name")
		}
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient, actor), nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id string, viewer auth.Identity) (domain.IngredientResponse, error) {
	ingredient, err := s.getVisible(ctx, id, viewer)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient, viewer), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, status string, page, limit int, viewer auth.Identity) (domain.IngredientListResponse, error) {
	status, err := moderation.ListFilter(status, viewer.IsModerator())
	if err != nil {
		return domain.IngredientListResponse{}, err
	}
	page, limit = domain.NormalizePagination(page, limit)

	ingredients, count, err := s.ingredientRepository.GetIngredients(ctx, status, page, limit)
	if err != nil {
		return domain.IngredientListResponse{}, err
	}

	res := domain.IngredientListResponse{
		Ingredients: make([]domain.IngredientResponse, 0, len(ingredients)),
		Pagination:  domain.NewPagination(page, limit, count),
	}
	for _, ing := range ingredients {
		res.Ingredients = append(res.Ingredients, toIngredientResponse(ing, viewer))
	}
	return res, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, actor auth.Identity) (domain.IngredientResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient, err := s.getVisible(ctx, id, actor)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	var changed []string
	if req.Name != "" && req.Name != ingredient.Name {
		if _, err := s.ingredientRepository.GetIngredientByName(ctx, req.Name); err == nil {
			return domain.IngredientResponse{}, domain.DuplicateEntity("name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, err
		}
		ingredient.Name = req.Name
		changed = append(changed, "name")
	}
	if req.Description != "" && req.Description != ingredient.Description {
		ingredient.Description = req.Description
		changed = append(changed, "description")
	}

	state, err := s.policy.ApplyEditBy(
		moderation.State{Status: ingredient.Status, ApproverID: ingredient.ApproverID},
		moderation.AnySubstantive("ingredient", changed),
		actor.IsModerator(),
	)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	ingredient.Status = state.Status
	ingredient.ApproverID = state.ApproverID

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.IngredientResponse{}, domain.DuplicateEntity("name")
		}
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient, actor), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, actor auth.Identity) error {
	if err := actor.RequireModerator(); err != nil {
		return err
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	return s.ingredientRepository.DeleteIngredientCascade(ctx, ingredient.ID)
}

func (s *ingredientService) ApproveIngredient(ctx context.Context, id string, actor auth.Identity) (domain.IngredientResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Approve)
}

func (s *ingredientService) RejectIngredient(ctx context.Context, id string, actor auth.Identity) (domain.IngredientResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Reject)
}

func (s *ingredientService) moderate(ctx context.Context, id string, actor auth.Identity, decide func(uuid.UUID) moderation.State) (domain.IngredientResponse, error) {
	if err := actor.RequireModerator(); err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	state := decide(actor.UserID)
	ingredient.Status = state.Status
	ingredient.ApproverID = state.ApproverID

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient, actor), nil
}

// getVisible loads the ingredient and hides non-approved entries from
// non-moderators behind a not-found, so pending content is indistinguishable
// from absent content to the public.
func (s *ingredientService) getVisible(ctx context.Context, id string, viewer auth.Identity) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	if ingredient.Status != moderation.StatusApproved && !viewer.IsModerator() {
		return nil, domain.ErrIngredientNotFound
	}
	return ingredient, nil
}

func toIngredientResponse(ingredient *entities.Ingredient, viewer auth.Identity) domain.IngredientResponse {
	res := domain.IngredientResponse{
		ID:          ingredient.ID.String(),
		Name:        ingredient.Name,
		Description: ingredient.Description,
		Status:      ingredient.Status,
		CreatedAt:   ingredient.CreatedAt,
		Links:       hypermedia.IngredientLinks(ingredient, viewer),
	}
	if ingredient.ApproverID != nil {
		res.ApproverID = ingredient.ApproverID.String()
	}
	return res
}
