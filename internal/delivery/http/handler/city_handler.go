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

// CityHandler - обработчик операций над городами
type CityHandler struct {
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

// NewCityHandler - создание нового CityHandler
func NewCityHandler(cityUC *usecase.CityUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC: cityUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Создание города
// @Description Создаёт город в существующем штате. Имя уникально в пределах штата.
// @Tags Cities
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param request body dto.CityRequest true "Данные города"
// @Success 201 {object} utils.SuccessResponse{data=dto.CityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/city [post]
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var req dto.CityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.cityUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление города
// @Tags Cities
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param id path string true "ID города"
// @Param request body dto.CityRequest true "Данные города"
// @Success 200 {object} utils.SuccessResponse{data=dto.CityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/city/{id} [put]
func (h *CityHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.CityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.cityUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Город по идентификатору
// @Tags Cities
// @Produce json
// @Param id path string true "ID города"
// @Success 200 {object} utils.SuccessResponse{data=dto.CityResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/city/{id} [get]
func (h *CityHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.cityUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список городов
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CityResponse}
// @Router /api/v1/city [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	result, err := h.cityUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByState godoc
// @Summary Города штата
// @Tags Cities
// @Produce json
// @Param stateId path string true "ID штата"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CityResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/city/getbystate/{stateId} [get]
func (h *CityHandler) ListByState(c *fiber.Ctx) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.cityUC.ListByState(c.Context(), stateID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByCountry godoc
// @Summary Города страны
// @Tags Cities
// @Produce json
// @Param countryId path string true "ID страны"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CityResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/city/getbycountry/{countryId} [get]
func (h *CityHandler) ListByCountry(c *fiber.Ctx) error {
	countryID, err := parseIDParam(c, "countryId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.cityUC.ListByCountry(c.Context(), countryID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Search godoc
// @Summary Поиск городов по имени
// @Tags Cities
// @Produce json
// @Param name query string true "Подстрока имени"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CityResponse}
// @Router /api/v1/city/search [get]
func (h *CityHandler) Search(c *fiber.Ctx) error {
	result, err := h.cityUC.Search(c.Context(), c.Query("name"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
