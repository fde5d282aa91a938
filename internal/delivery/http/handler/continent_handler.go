package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/pkg/utils"
	"github.com/geo-registry/internal/pkg/validator"
	"github.com/geo-registry/internal/usecase"
	"github.com/geo-registry/internal/usecase/dto"
)

// HeaderClientID - заголовок с идентификатором клиента-владельца
const HeaderClientID = "CLIENT-ID"

// ContinentHandler - обработчик операций над континентами
type ContinentHandler struct {
	continentUC *usecase.ContinentUseCase
	logger      *zap.Logger
}

// NewContinentHandler - создание нового ContinentHandler
func NewContinentHandler(continentUC *usecase.ContinentUseCase, logger *zap.Logger) *ContinentHandler {
	return &ContinentHandler{
		continentUC: continentUC,
		logger:      logger,
	}
}

// Create godoc
// @Summary Создание континента
// @Description Создаёт континент под клиентом из заголовка CLIENT-ID. Имя уникально во всём реестре.
// @Tags Continents
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param CLIENT-ID header string true "ID клиента-владельца"
// @Param request body dto.CreateContinentRequest true "Данные континента"
// @Success 201 {object} utils.SuccessResponse{data=dto.ContinentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/continent [post]
func (h *ContinentHandler) Create(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Get(HeaderClientID))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid CLIENT-ID header"))
	}

	var req dto.CreateContinentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.continentUC.Create(c.Context(), clientID, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление континента
// @Description Переименовывает континент; привязка к клиенту не меняется
// @Tags Continents
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param id path string true "ID континента"
// @Param request body dto.UpdateContinentRequest true "Данные континента"
// @Success 200 {object} utils.SuccessResponse{data=dto.ContinentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/continent/{id} [put]
func (h *ContinentHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateContinentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.continentUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Континент по идентификатору
// @Tags Continents
// @Produce json
// @Param id path string true "ID континента"
// @Success 200 {object} utils.SuccessResponse{data=dto.ContinentResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/continent/{id} [get]
func (h *ContinentHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.continentUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список континентов
// @Tags Continents
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ContinentResponse}
// @Router /api/v1/continent [get]
func (h *ContinentHandler) List(c *fiber.Ctx) error {
	result, err := h.continentUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Search godoc
// @Summary Поиск континентов по имени
// @Description Регистронезависимый поиск по подстроке имени
// @Tags Continents
// @Produce json
// @Param name query string true "Подстрока имени"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ContinentResponse}
// @Router /api/v1/continent/search [get]
func (h *ContinentHandler) Search(c *fiber.Ctx) error {
	result, err := h.continentUC.Search(c.Context(), c.Query("name"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
