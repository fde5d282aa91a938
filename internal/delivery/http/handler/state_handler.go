package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/pkg/utils"
	"github.com/geo-registry/internal/pkg/validator"
	"github.com/geo-registry/internal/usecase"
	"github.com/geo-registry/internal/usecase/dto"
)

// StateHandler - обработчик операций над штатами
type StateHandler struct {
	stateUC *usecase.StateUseCase
	logger  *zap.Logger
}

// NewStateHandler - создание нового StateHandler
func NewStateHandler(stateUC *usecase.StateUseCase, logger *zap.Logger) *StateHandler {
	return &StateHandler{
		stateUC: stateUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Создание штата
// @Description Создаёт штат в существующей стране. Имя уникально в пределах страны.
// @Tags States
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param request body dto.StateRequest true "Данные штата"
// @Success 201 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/state [post]
func (h *StateHandler) Create(c *fiber.Ctx) error {
	var req dto.StateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stateUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление штата
// @Tags States
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param id path string true "ID штата"
// @Param request body dto.StateRequest true "Данные штата"
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/state/{id} [put]
func (h *StateHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.StateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stateUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Штат по идентификатору
// @Tags States
// @Produce json
// @Param id path string true "ID штата"
// @Success 200 {object} utils.SuccessResponse{data=dto.StateResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/state/{id} [get]
func (h *StateHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stateUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список штатов
// @Tags States
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StateResponse}
// @Router /api/v1/state [get]
func (h *StateHandler) List(c *fiber.Ctx) error {
	result, err := h.stateUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByCountry godoc
// @Summary Штаты страны
// @Tags States
// @Produce json
// @Param countryId path string true "ID страны"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StateResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/state/getbycountry/{countryId} [get]
func (h *StateHandler) ListByCountry(c *fiber.Ctx) error {
	countryID, err := parseIDParam(c, "countryId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.stateUC.ListByCountry(c.Context(), countryID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Search godoc
// @Summary Поиск штатов по имени
// @Tags States
// @Produce json
// @Param name query string true "Подстрока имени"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StateResponse}
// @Router /api/v1/state/search [get]
func (h *StateHandler) Search(c *fiber.Ctx) error {
	result, err := h.stateUC.Search(c.Context(), c.Query("name"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
