package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/pkg/validator"
	"github.com/geo-registry/internal/usecase/dto"
)

func TestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		err := validator.Validate(&dto.CreateTenantRequest{
			Name:  "Acme",
			Email: "ops@acme.com",
		})
		assert.NoError(t, err)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		err := validator.Validate(&dto.CreateTenantRequest{
			Name:  "",
			Email: "ops@acme.com",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		err := validator.Validate(&dto.ClientRequest{
			Name: strings.Repeat("x", 61),
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		err := validator.Validate(&dto.CreateTenantRequest{
			Name:  "Acme",
			Email: "not-an-email",
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		err := validator.Validate(&dto.LocationRequest{
			HouseAddress: "12",
			StreetName:   "Allen Avenue",
			Latitude:     95,
			Longitude:    10,
		})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})
}
