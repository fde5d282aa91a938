package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/pkg/utils"
	"github.com/geo-registry/internal/usecase"
)

// HeaderAPIKey - заголовок с API-ключом тенанта
const HeaderAPIKey = "X-API-KEY"

const tenantKey = "tenant"

// APIKey - middleware проверки API-ключа; тенант кладётся в Locals
func APIKey(auth *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderAPIKey)
		if key == "" {
			return utils.SendError(c, errors.ErrMissingAPIKey)
		}

		tenant, err := auth.Verify(c.Context(), key)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(tenantKey, tenant)
		return c.Next()
	}
}

// AdminAPIKey - middleware проверки API-ключа и административных прав
func AdminAPIKey(auth *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderAPIKey)
		if key == "" {
			return utils.SendError(c, errors.ErrMissingAPIKey)
		}

		tenant, err := auth.VerifyAdmin(c.Context(), key)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(tenantKey, tenant)
		return c.Next()
	}
}

// TenantFromContext - тенант, положенный в Locals auth-middleware'ом
func TenantFromContext(c *fiber.Ctx) *domain.Tenant {
	tenant, _ := c.Locals(tenantKey).(*domain.Tenant)
	return tenant
}
