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

// LocationHandler - обработчик операций над локациями
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Create godoc
// @Summary Создание локации
// @Description Создаёт локацию в существующем районе. Ограничения уникальности адреса нет.
// @Tags Locations
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param request body dto.LocationRequest true "Данные локации"
// @Success 201 {object} utils.SuccessResponse{data=dto.LocationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление локации
// @Tags Locations
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param id path string true "ID локации"
// @Param request body dto.LocationRequest true "Данные локации"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Локация по идентификатору
// @Tags Locations
// @Produce json
// @Param id path string true "ID локации"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location/{id} [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список локаций
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LocationResponse}
// @Router /api/v1/location [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	result, err := h.locationUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByArea godoc
// @Summary Локации района
// @Tags Locations
// @Produce json
// @Param areaId path string true "ID района"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LocationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location/getbyarea/{areaId} [get]
func (h *LocationHandler) ListByArea(c *fiber.Ctx) error {
	areaID, err := parseIDParam(c, "areaId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.ListByArea(c.Context(), areaID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByCity godoc
// @Summary Локации всех районов города
// @Tags Locations
// @Produce json
// @Param cityId path string true "ID города"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LocationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location/getbycity/{cityId} [get]
func (h *LocationHandler) ListByCity(c *fiber.Ctx) error {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.ListByCity(c.Context(), cityID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByState godoc
// @Summary Локации всех городов штата
// @Tags Locations
// @Produce json
// @Param stateId path string true "ID штата"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LocationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location/getbystate/{stateId} [get]
func (h *LocationHandler) ListByState(c *fiber.Ctx) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.ListByState(c.Context(), stateID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByCountry godoc
// @Summary Локации всей страны
// @Tags Locations
// @Produce json
// @Param countryId path string true "ID страны"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LocationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/location/getbycountry/{countryId} [get]
func (h *LocationHandler) ListByCountry(c *fiber.Ctx) error {
	countryID, err := parseIDParam(c, "countryId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.ListByCountry(c.Context(), countryID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Search godoc
// @Summary Поиск локаций по адресу
// @Description Регистронезависимый поиск по подстроке адреса дома или улицы
// @Tags Locations
// @Produce json
// @Param searchTerm query string true "Подстрока адреса"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LocationResponse}
// @Router /api/v1/location/search [get]
func (h *LocationHandler) Search(c *fiber.Ctx) error {
	result, err := h.locationUC.Search(c.Context(), c.Query("searchTerm"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
