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

// TenantHandler - обработчик административных операций над тенантами
type TenantHandler struct {
	tenantUC *usecase.TenantUseCase
	logger   *zap.Logger
}

// NewTenantHandler - создание нового TenantHandler
func NewTenantHandler(tenantUC *usecase.TenantUseCase, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{
		tenantUC: tenantUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Создание тенанта
// @Description Создаёт тенанта и генерирует для него API-ключ. Открытый ключ возвращается в ответе. Требует административный ключ.
// @Tags Tenants
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "Административный API-ключ"
// @Param request body dto.CreateTenantRequest true "Данные тенанта"
// @Success 201 {object} utils.SuccessResponse{data=dto.TenantResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/tenant [post]
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.tenantUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление тенанта
// @Description Обновляет имя, email и активность тенанта. API-ключ не меняется. Требует административный ключ.
// @Tags Tenants
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "Административный API-ключ"
// @Param id path string true "ID тенанта"
// @Param request body dto.UpdateTenantRequest true "Данные тенанта"
// @Success 200 {object} utils.SuccessResponse{data=dto.TenantResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tenant/{id} [put]
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.tenantUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Тенант по идентификатору
// @Description Возвращает тенанта с расшифрованным API-ключом. Требует административный ключ.
// @Tags Tenants
// @Produce json
// @Param X-API-KEY header string true "Административный API-ключ"
// @Param id path string true "ID тенанта"
// @Success 200 {object} utils.SuccessResponse{data=dto.TenantResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tenant/{id} [get]
func (h *TenantHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.tenantUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список тенантов
// @Description Возвращает всех тенантов с расшифрованными ключами. Требует административный ключ.
// @Tags Tenants
// @Produce json
// @Param X-API-KEY header string true "Административный API-ключ"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TenantResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/tenant [get]
func (h *TenantHandler) List(c *fiber.Ctx) error {
	result, err := h.tenantUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
