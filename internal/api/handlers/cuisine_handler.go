package handlers

import (
	"cookbook-backend/domain"
	"cookbook-backend/internal/api/presenters"
	"cookbook-backend/internal/middleware"
	"cookbook-backend/pkg/cuisine"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CuisineHandler interface {
		CreateCuisine(c *fiber.Ctx) error
		GetCuisine(c *fiber.Ctx) error
		GetCuisines(c *fiber.Ctx) error
		UpdateCuisine(c *fiber.Ctx) error
		DeleteCuisine(c *fiber.Ctx) error
		ApproveCuisine(c *fiber.Ctx) error
		RejectCuisine(c *fiber.Ctx) error
	}

	cuisineHandler struct {
		cuisineService cuisine.CuisineService
		validator      *validator.Validate
	}
)

func NewCuisineHandler(cuisineService cuisine.CuisineService, validator *validator.Validate) CuisineHandler {
	return &cuisineHandler{
		cuisineService: cuisineService,
		validator:      validator,
	}
}

func (h *cuisineHandler) CreateCuisine(c *fiber.Ctx) error {
	req := new(domain.CreateCuisineRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCuisine, err)
	}

	res, err := h.cuisineService.CreateCuisine(c.Context(), *req, middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateCuisine, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCuisine)
}

func (h *cuisineHandler) GetCuisine(c *fiber.Ctx) error {
	res, err := h.cuisineService.GetCuisine(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetCuisine, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCuisine)
}

func (h *cuisineHandler) GetCuisines(c *fiber.Ctx) error {
	page, limit := paginationQuery(c)
	res, err := h.cuisineService.GetCuisines(c.Context(), c.Query("status"), page, limit, middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetCuisines, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCuisines)
}

func (h *cuisineHandler) UpdateCuisine(c *fiber.Ctx) error {
	req := new(domain.UpdateCuisineRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCuisine, err)
	}

	res, err := h.cuisineService.UpdateCuisine(c.Context(), c.Params("id"), *req, middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateCuisine, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCuisine)
}

func (h *cuisineHandler) DeleteCuisine(c *fiber.Ctx) error {
	if err := h.cuisineService.DeleteCuisine(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeleteCuisine, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCuisine)
}

func (h *cuisineHandler) ApproveCuisine(c *fiber.Ctx) error {
	res, err := h.cuisineService.ApproveCuisine(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedModerateCuisine, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessModerateCuisine)
}

func (h *cuisineHandler) RejectCuisine(c *fiber.Ctx) error {
	res, err := h.cuisineService.RejectCuisine(c.Context(), c.Params("id"), middleware.IdentityFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedModerateCuisine, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessModerateCuisine)
}
