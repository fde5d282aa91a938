package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/geo-registry/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse is the flat {error, message} envelope every recovered
// failure is reduced to at the boundary.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Meta struct {
	Total int `json:"total,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Data: data,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error:   appErr.Code,
			Message: appErr.Message,
		})
	}

	// Unknown error - return 500 without leaking internals
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   errors.ErrInternalServer.Code,
		Message: errors.ErrInternalServer.Message,
	})
}
