package handlers

import (
	"cookbook-backend/domain"
	"cookbook-backend/internal/api/presenters"
	"cookbook-backend/internal/middleware"
	"cookbook-backend/pkg/nutrition"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NutritionHandler interface {
		CreateNutritionFact(c *fiber.Ctx) error
		GetNutritionFact(c *fiber.Ctx) error
		GetNutritionFacts(c *fiber.Ctx) error
		UpdateNutritionFact(c *fiber.Ctx) error
		DeleteNutritionFact(c *fiber.Ctx) error
		ApproveNutritionFact(c *fiber.Ctx) error
		RejectNutritionFact(c *fiber.Ctx) error
	}

	nutritionHandler struct {
		nutritionService nutrition.NutritionService
		validator        *validator.Validate
	}
)

func NewNutritionHandler(nutritionService nutrition.NutritionService, validator *validator.Validate) NutritionHandler {
	return &nutritionHandler{
		nutritionService: nutritionService,
		validator:        validator,
	}
}

func (h *nutritionHandler) CreateNutritionFact(c *fiber.Ctx) error {
	req := new(domain.CreateNutritionFactRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateNutritionFact, err)
	}

	res, err := h.nutritionService.CreateNutritionFact(c.Context(), *req, middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateNutritionFact, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateNutritionFact)
}

func (h *nutritionHandler) GetNutritionFact(c *fiber.Ctx) error {
	res, err := h.nutritionService.GetNutritionFact(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetNutritionFact, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNutritionFact)
}

func (h *nutritionHandler) GetNutritionFacts(c *fiber.Ctx) error {
	page, limit := paginationQuery(c)
	res, err := h.nutritionService.GetNutritionFacts(c.Context(), c.Query("status"), page, limit, middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetNutritionFacts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNutritionFacts)
}

func (h *nutritionHandler) UpdateNutritionFact(c *fiber.Ctx) error {
	req := new(domain.UpdateNutritionFactRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNutritionFact, err)
	}

	res, err := h.nutritionService.UpdateNutritionFact(c.Context(), c.Params("id"), *req, middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateNutritionFact, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateNutritionFact)
}

func (h *nutritionHandler) DeleteNutritionFact(c *fiber.Ctx) error {
	if err := h.nutritionService.DeleteNutritionFact(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeleteNutritionFact, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNutritionFact)
}

func (h *nutritionHandler) ApproveNutritionFact(c *fiber.Ctx) error {
	res, err := h.nutritionService.ApproveNutritionFact(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedModerateNutritionFact, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessModerateNutritionFact)
}

func (h *nutritionHandler) RejectNutritionFact(c *fiber.Ctx) error {
	res, err := h.nutritionService.RejectNutritionFact(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedModerateNutritionFact, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessModerateNutritionFact)
}
