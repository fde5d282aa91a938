package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/delivery/http/middleware"
	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/pkg/utils"
	"github.com/geo-registry/internal/pkg/validator"
	"github.com/geo-registry/internal/usecase"
	"github.com/geo-registry/internal/usecase/dto"
)

// ClientHandler - обработчик операций над клиентами
type ClientHandler struct {
	clientUC *usecase.ClientUseCase
	logger   *zap.Logger
}

// NewClientHandler - создание нового ClientHandler
func NewClientHandler(clientUC *usecase.ClientUseCase, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		clientUC: clientUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Создание клиента
// @Description Создаёт клиента под тенантом, которому принадлежит предъявленный API-ключ
// @Tags Clients
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param request body dto.ClientRequest true "Данные клиента"
// @Success 201 {object} utils.SuccessResponse{data=dto.ClientResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/client [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tenant := middleware.TenantFromContext(c)
	if tenant == nil {
		return utils.SendError(c, errors.ErrInvalidAPIKey)
	}

	result, err := h.clientUC.Create(c.Context(), tenant, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Обновление клиента
// @Description Обновляет имя клиента; принадлежность тенанту не меняется
// @Tags Clients
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "API-ключ тенанта"
// @Param id path string true "ID клиента"
// @Param request body dto.ClientRequest true "Данные клиента"
// @Success 200 {object} utils.SuccessResponse{data=dto.ClientResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/client/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.clientUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Клиент по идентификатору
// @Tags Clients
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} utils.SuccessResponse{data=dto.ClientResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/client/{id} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.clientUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary Список клиентов
// @Tags Clients
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ClientResponse}
// @Router /api/v1/client [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	result, err := h.clientUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
