package cuisine

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
	CuisineService interface {
		CreateCuisine(ctx context.Context, req domain.CreateCuisineRequest, actor auth.Identity) (domain.CuisineResponse, error)
		GetCuisine(ctx context.Context, id string, viewer auth.Identity) (domain.CuisineResponse, error)
		GetCuisines(ctx context.Context, status string, page, limit int, viewer auth.Identity) (domain.CuisineListResponse, error)
		UpdateCuisine(ctx context.Context, id string, req domain.UpdateCuisineRequest, actor auth.Identity) (domain.CuisineResponse, error)
		DeleteCuisine(ctx context.Context, id string, actor auth.Identity) error
		ApproveCuisine(ctx context.Context, id string, actor auth.Identity) (domain.CuisineResponse, error)
		RejectCuisine(ctx context.Context, id string, actor auth.Identity) (domain.CuisineResponse, error)
	}

	cuisineService struct {
		cuisineRepository CuisineRepository
		policy            moderation.Policy
	}
)

func NewCuisineService(cuisineRepository CuisineRepository, policy moderation.Policy) CuisineService {
	return &cuisineService{
		cuisineRepository: cuisineRepository,
		policy:            policy,
	}
}

func (s *cuisineService) CreateCuisine(ctx context.Context, req domain.CreateCuisineRequest, actor auth.Identity) (domain.CuisineResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.CuisineResponse{}, err
	}

	if _, err := s.cuisineRepository.GetCuisineByName(ctx, req.Name); err == nil {
		return domain.CuisineResponse{}, domain.DuplicateEntity("name")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CuisineResponse{}, err
	}

	state := moderation.Submit()
	cuisine := &entities.Cuisine{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      state.Status,
		ApproverID:  state.ApproverID,
	}

	if err := s.cuisineRepository.CreateCuisine(ctx, cuisine); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CuisineResponse{}, domain.DuplicateEntity("name")
		}
		return domain.CuisineResponse{}, err
	}

	return toCuisineResponse(cuisine, actor), nil
}

func (s *cuisineService) GetCuisine(ctx context.Context, id string, viewer auth.Identity) (domain.CuisineResponse, error) {
	cuisine, err := s.getVisible(ctx, id, viewer)
	if err != nil {
		return domain.CuisineResponse{}, err
	}
	return toCuisineResponse(cuisine, viewer), nil
}

func (s *cuisineService) GetCuisines(ctx context.Context, status string, page, limit int, viewer auth.Identity) (domain.CuisineListResponse, error) {
	status, err := moderation.ListFilter(status, viewer.IsModerator())
	if err != nil {
		return domain.CuisineListResponse{}, err
	}
	page, limit = domain.NormalizePagination(page, limit)

	cuisines, count, err := s.cuisineRepository.GetCuisines(ctx, status, page, limit)
	if err != nil {
		return domain.CuisineListResponse{}, err
	}

	res := domain.CuisineListResponse{
		Cuisines:   make([]domain.CuisineResponse, 0, len(cuisines)),
		Pagination: domain.NewPagination(page, limit, count),
	}
	for _, c := range cuisines {
		res.Cuisines = append(res.Cuisines, toCuisineResponse(c, viewer))
	}
	return res, nil
}

func (s *cuisineService) UpdateCuisine(ctx context.Context, id string, req domain.UpdateCuisineRequest, actor auth.Identity) (domain.CuisineResponse, error) {
	if err := actor.RequireAuthenticated(); err != nil {
		return domain.CuisineResponse{}, err
	}

	cuisine, err := s.getVisible(ctx, id, actor)
	if err != nil {
		return domain.CuisineResponse{}, err
	}

	var changed []string
	if req.Name != "" && req.Name != cuisine.Name {
		if _, err := s.cuisineRepository.GetCuisineByName(ctx, req.Name); err == nil {
			return domain.CuisineResponse{}, domain.DuplicateEntity("name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CuisineResponse{}, err
		}
		cuisine.Name = req.Name
		changed = append(changed, "name")
	}
	if req.Description != "" && req.Description != cuisine.Description {
		cuisine.Description = req.Description
		changed = append(changed, "description")
	}

	state, err := s.policy.ApplyEditBy(
		moderation.State{Status: cuisine.Status, ApproverID: cuisine.ApproverID},
		moderation.AnySubstantive("cuisine", changed),
		actor.IsModerator(),
	)
	if err != nil {
		return domain.CuisineResponse{}, err
	}
	cuisine.Status = state.Status
	cuisine.ApproverID = state.ApproverID

	if err := s.cuisineRepository.UpdateCuisine(ctx, cuisine); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CuisineResponse{}, domain.DuplicateEntity("name")
		}
		return domain.CuisineResponse{}, err
	}

	return toCuisineResponse(cuisine, actor), nil
}

func (s *cuisineService) DeleteCuisine(ctx context.Context, id string, actor auth.Identity) error {
	if err := actor.RequireModerator(); err != nil {
		return err
	}

	cuisine, err := s.cuisineRepository.GetCuisineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCuisineNotFound
		}
		return err
	}

	return s.cuisineRepository.DeleteCuisineCascade(ctx, cuisine.ID)
}

func (s *cuisineService) ApproveCuisine(ctx context.Context, id string, actor auth.Identity) (domain.CuisineResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Approve)
}

func (s *cuisineService) RejectCuisine(ctx context.Context, id string, actor auth.Identity) (domain.CuisineResponse, error) {
	return s.moderate(ctx, id, actor, moderation.Reject)
}

func (s *cuisineService) moderate(ctx context.Context, id string, actor auth.Identity, decide func(uuid.UUID) moderation.State) (domain.CuisineResponse, error) {
	if err := actor.RequireModerator(); err != nil {
		return domain.CuisineResponse{}, err
	}

	cuisine, err := s.cuisineRepository.GetCuisineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CuisineResponse{}, domain.ErrCuisineNotFound
		}
		return domain.CuisineResponse{}, err
	}

	state := decide(actor.UserID)
	cuisine.Status = state.Status
	cuisine.ApproverID = state.ApproverID

	if err := s.cuisineRepository.UpdateCuisine(ctx, cuisine); err != nil {
		return domain.CuisineResponse{}, err
	}

	return toCuisineResponse(cuisine, actor), nil
}

func (s *cuisineService) getVisible(ctx context.Context, id string, viewer auth.Identity) (*entities.Cuisine, error) {
	cuisine, err := s.cuisineRepository.GetCuisineByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCuisineNotFound
		}
		return nil, err
	}
	if cuisine.Status != moderation.StatusApproved && !viewer.IsModerator() {
		return nil, domain.ErrCuisineNotFound
	}
	return cuisine, nil
}

func toCuisineResponse(cuisine *entities.Cuisine, viewer auth.Identity) domain.CuisineResponse {
	res := domain.CuisineResponse{
		ID:          cuisine.ID.String(),
		Name:        cuisine.Name,
		Description: cuisine.Description,
		Status:      cuisine.Status,
		CreatedAt:   cuisine.CreatedAt,
		Links:       hypermedia.CuisineLinks(cuisine, viewer),
	}
	if cuisine.ApproverID != nil {
		res.ApproverID = cuisine.ApproverID.String()
	}
	return res
}
