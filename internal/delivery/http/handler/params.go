package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/geo-registry/internal/pkg/errors"
)

// parseIDParam - разбор UUID из path-параметра
func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithMessage("Invalid " + name + " parameter")
	}
	return id, nil
}
