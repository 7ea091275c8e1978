package nutrition

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
	NutritionService interface {
		CreateNutritionFact(ctx context.Context, req domain.CreateNutritionFactRequest, actor auth.Identity) (domain.NutritionFactResponse, error)
		GetNutritionFact(ctx context.Context, id string, viewer auth.Identity) (domain.NutritionFactResponse, error)
		GetNutritionFacts(ctx context.Context, status string, page, limit int, viewer auth.Identity) (domain.NutritionFactListResponse, error)
		UpdateNutritionFact(ctx context.Context, id string, req domain.UpdateNutritionFactRequest, actor auth.Identity) (domain.NutritionFactResponse, error)
		DeleteNutritionFact(ctx context.Context, id string, actor auth.Identity) error
		ApproveNutritionFact(ctx context.Context, id string, actor auth.Identity) (domain.NutritionFactResponse, error)
		RejectNutritionFact(ctx context.Context, id string, actor auth.Identity) (domain.NutritionFactResponse, error)
	}

	nutritionService struct {
		nutritionRepository NutritionRepository
		policy              moderation.Policy
	}
)

func NewNutritionService(nutritionRepository NutritionRepository, policy moderation.Policy) NutritionService {
	return &nutritionService{
		nutritionRepository: nutritionRepository,
		policy:              policy,
	}
}

func (s *nutritionService) CreateNutritionFact(ctx context.Context, req domain.CreateNutritionFactRequest, actor auth.Identity) (domain.NutritionFactResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.NutritionFactResponse{}, err
	}

	if _, err := s.nutritionRepository.GetNutritionFactByName(ctx, req.Name); err == nil {
		return domain.NutritionFactResponse{}, domain.DuplicateEntity("name")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NutritionFactResponse{}, err
	}

	state := moderation.Submit()
	fact := &entities.NutritionFact{
		ID:         uuid.New(),
		Name:       req.Name,
		Benefits:   req.Benefits,
		Status:     state.Status,
		ApproverID: state.ApproverID,
	}

	if err := s.nutritionRepository.CreateNutritionFact(ctx, fact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NutritionFactResponse{}, domain.DuplicateEntity("name")
		}
		return domain.NutritionFactResponse{}, err
	}

	return toNutritionFactResponse(fact, actor), nil
}

func (s *nutritionService) GetNutritionFact(ctx context.Context, id string, viewer auth.Identity) (domain.NutritionFactResponse, error) {
	fact, err := s.getVisible(ctx, id, viewer)
	if err != nil {
		return domain.NutritionFactResponse{}, err
	}
	return toNutritionFactResponse(fact, viewer), nil
}

func (s *nutritionService) GetNutritionFacts(ctx context.Context, status string, page, limit int, viewer auth.Identity) (domain.NutritionFactListResponse, error) {
	status, err := moderation.ListFilter(status, viewer.IsModerator())
	if err != nil {
		return domain.NutritionFactListResponse{}, err
	}
	page, limit = domain.NormalizePagination(page, limit)

	facts, count, err := s.nutritionRepository.GetNutritionFacts(ctx, status, page, limit)
	if err != nil {
		return domain.NutritionFactListResponse{}, err
	}

	res := domain.NutritionFactListResponse{
		NutritionFacts: make([]domain.NutritionFactResponse, 0, len(facts)),
		Pagination:     domain.NewPagination(page, limit, count),
	}
	for _, f := range facts {
		res.NutritionFacts = append(res.NutritionFacts, toNutritionFactResponse(f, viewer))
	}
	return res, nil
}

func (s *nutritionService) UpdateNutritionFact(ctx context.Context, id string, req domain.UpdateNutritionFactRequest, actor auth.Identity) (domain.NutritionFactResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.NutritionFactResponse{}, err
	}

	fact, err := s.getVisible(ctx, id, actor)
	if err != nil {
		return domain.NutritionFactResponse{}, err
	}

	var changed []string
	if req.Name != "" && req.Name != fact.Name {
		if _, err := s.nutritionRepository.GetNutritionFactByName(ctx, req.Name); err == nil {
			return domain.NutritionFactResponse{}, domain.DuplicateEntity("name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NutritionFactResponse{}, err
		}
		fact.Name = req.Name
		changed = append(changed, "name")
	}
	if req.Benefits != "" && req.Benefits != fact.Benefits {
		fact.Benefits = req.Benefits
		changed = append(changed, "benefits")
	}

	state, err := s.policy.ApplyEditBy(
		moderation.State{Status: fact.Status, ApproverID: fact.ApproverID},
		moderation.AnySubstantive("nutrition_fact", changed),
		actor.IsModerator(),
	)
	if err != nil {
		return domain.NutritionFactResponse{}, err
	}
	fact.Status = state.Status
	fact.ApproverID = state.ApproverID

	if err := s.nutritionRepository.UpdateNutritionFact(ctx, fact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NutritionFactResponse{}, domain.DuplicateEntity("name")
		}
		return domain.NutritionFactResponse{}, err
	}

	return toNutritionFactResponse(fact, actor), nil
}

func (s *nutritionService) DeleteNutritionFact(ctx context.Context, id string, actor auth.Identity) error {
	if err := actor.RequireModerator(); err != nil {
		return err
	}

	fact, err := s.nutritionRepository.GetNutritionFactByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNutritionFactNotFound
		}
		return err
	}

	return s.nutritionRepository.DeleteNutritionFactCascade(ctx, fact.ID)
}

func (s *nutritionService) ApproveNutritionFact(ctx context.Context, id string, actor auth.Identity) (domain.NutritionFactResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Approve)
}

func (s *nutritionService) RejectNutritionFact(ctx context.Context, id string, actor auth.Identity) (domain.NutritionFactResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Reject)
}

func (s *nutritionService) moderate(ctx context.Context, id string, actor auth.Identity, decide func(uuid.UUID) moderation.State) (domain.NutritionFactResponse, error) {
	if err := actor.RequireModerator(); err != nil {
		return domain.NutritionFactResponse{}, err
	}

	fact, err := s.nutritionRepository.GetNutritionFactByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NutritionFactResponse{}, domain.ErrNutritionFactNotFound
		}
		return domain.NutritionFactResponse{}, err
	}

	state := decide(actor.UserID)
	fact.Status = state.Status
	fact.ApproverID = state.ApproverID

	if err := s.nutritionRepository.UpdateNutritionFact(ctx, fact); err != nil {
		return domain.NutritionFactResponse{}, err
	}

	return toNutritionFactResponse(fact, actor), nil
}

func (s *nutritionService) getVisible(ctx context.Context, id string, viewer auth.Identity) (*entities.NutritionFact, error) {
	fact, err := s.nutritionRepository.GetNutritionFactByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNutritionFactNotFound
		}
		return nil, err
	}
	if fact.Status != moderation.StatusApproved && !viewer.IsModerator() {
		return nil, domain.ErrNutritionFactNotFound
	}
	return fact, nil
}

func toNutritionFactResponse(fact *entities.NutritionFact, viewer auth.Identity) domain.NutritionFactResponse {
	res := domain.NutritionFactResponse{
		ID:        fact.ID.String(),
		Name:      fact.Name,
		Benefits:  fact.Benefits,
		Status:    fact.Status,
		CreatedAt: fact.CreatedAt,
		Links:     hypermedia.NutritionFactLinks(fact, viewer),
	}
	if fact.ApproverID != nil {
		res.ApproverID = fact.ApproverID.String()
	}
	return res
}
