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

// AreaHandler - обработчик операций над районами
type AreaHandler struct {
	areaUC *usecase.AreaUseCase
	logger *zap.Logger
}

// NewAreaHandler - создание нового AreaHandler
func NewAreaHandler(areaUC *usecase.AreaUseCase, logger *zap.Logger) *AreaHandler {
	return &AreaHandler{
		areaUC: areaUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Создание района
// @Description Создаёт район в существующем городе. Имя уникально в пределах города.
// @Tags Areas
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param request body dto.AreaRequest true "Данные района"
// @Success 201 {object} utils.SuccessResponse{data=dto.AreaResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/area [post]
func (h *AreaHandler) Create(c *fiber.Ctx) error {
	var req dto.AreaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление района
// @Tags Areas
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param id path string true "ID района"
// @Param request body dto.AreaRequest true "Данные района"
// @Success 200 {object} utils.SuccessResponse{data=dto.AreaResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/area/{id} [put]
func (h *AreaHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AreaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Район по идентификатору
// @Tags Areas
// @Produce json
// @Param id path string true "ID района"
// @Success 200 {object} utils.SuccessResponse{data=dto.AreaResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/area/{id} [get]
func (h *AreaHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список районов
// @Tags Areas
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AreaResponse}
// @Router /api/v1/area [get]
func (h *AreaHandler) List(c *fiber.Ctx) error {
	result, err := h.areaUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByCity godoc
// @Summary Районы города
// @Tags Areas
// @Produce json
// @Param cityId path string true "ID города"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AreaResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/area/getbycity/{cityId} [get]
func (h *AreaHandler) ListByCity(c *fiber.Ctx) error {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.ListByCity(c.Context(), cityID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByState godoc
// @Summary Районы всех городов штата
// @Tags Areas
// @Produce json
// @Param stateId path string true "ID штата"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AreaResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/area/getbystate/{stateId} [get]
func (h *AreaHandler) ListByState(c *fiber.Ctx) error {
	stateID, err := parseIDParam(c, "stateId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.ListByState(c.Context(), stateID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ListByCountry godoc
// @Summary Районы всех городов страны
// @Tags Areas
// @Produce json
// @Param countryId path string true "ID страны"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AreaResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/area/getbycountry/{countryId} [get]
func (h *AreaHandler) ListByCountry(c *fiber.Ctx) error {
	countryID, err := parseIDParam(c, "countryId")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.ListByCountry(c.Context(), countryID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Search godoc
// @Summary Поиск районов по имени
// @Tags Areas
// @Produce json
// @Param name query string true "Подстрока имени"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AreaResponse}
// @Router /api/v1/area/search [get]
func (h *AreaHandler) Search(c *fiber.Ctx) error {
	result, err := h.areaUC.Search(c.Context(), c.Query("name"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
