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

// CountryHandler - обработчик операций над странами
type CountryHandler struct {
	countryUC *usecase.CountryUseCase
	logger    *zap.Logger
}

// NewCountryHandler - создание нового CountryHandler
func NewCountryHandler(countryUC *usecase.CountryUseCase, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{
		countryUC: countryUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Создание страны
// @Description Создаёт страну на существующем континенте. Имя, код страны и телефонный код уникальны во всём реестре.
// @Tags Countries
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param request body dto.CountryRequest true "Данные страны"
// @Success 201 {object} utils.SuccessResponse{data=dto.CountryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/country [post]
func (h *CountryHandler) Create(c *fiber.Ctx) error {
	var req dto.CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.countryUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление страны
// @Tags Countries
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param id path string true "ID страны"
// @Param request body dto.CountryRequest true "Данные страны"
// @Success 200 {object} utils.SuccessResponse{data=dto.CountryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/country/{id} [put]
func (h *CountryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.countryUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Страна по идентификатору
// @Tags Countries
// @Produce json
// @Param id path string true "ID страны"
// @Success 200 {object} utils.SuccessResponse{data=dto.CountryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/country/{id} [get]
func (h *CountryHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.countryUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список стран
// @Tags Countries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CountryResponse}
// @Router /api/v1/country [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	result, err := h.countryUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByContinent godoc
// @Summary Страны континента
// @Tags Countries
// @Produce json
// @Param continentId path string true "ID континента"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CountryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/country/getbycontinent/{continentId} [get]
func (h *CountryHandler) ListByContinent(c *fiber.Ctx) error {
	continentID, err := parseIDParam(c, "continentId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.countryUC.ListByContinent(c.Context(), continentID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Search godoc
// @Summary Поиск стран по имени
// @Tags Countries
// @Produce json
// @Param name query string true "Подстрока имени"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CountryResponse}
// @Router /api/v1/country/search [get]
func (h *CountryHandler) Search(c *fiber.Ctx) error {
	result, err := h.countryUC.Search(c.Context(), c.Query("name"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
