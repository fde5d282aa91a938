package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/usecase"
	"github.com/geo-registry/internal/usecase/dto"
)

type countryFixture struct {
	continents *MockNodeRepository[*domain.Continent]
	countries  *MockCountryRepository
	cache      *MockCacheRepository
	uc         *usecase.CountryUseCase

	africa *domain.Continent
}

func newCountryFixture() *countryFixture {
	f := &countryFixture{
		continents: &MockNodeRepository[*domain.Continent]{},
		countries:  &MockCountryRepository{},
		cache:      &MockCacheRepository{},
	}

	resolver := usecase.NewAncestorResolver(
		f.continents, f.countries,
		&MockNodeRepository[*domain.State]{},
		&MockNodeRepository[*domain.City]{},
		&MockNodeRepository[*domain.Area]{},
	)
	f.uc = usecase.NewCountryUseCase(f.countries, f.continents, resolver, f.cache, zap.NewNop(), time.Minute)

	f.africa = &domain.Continent{Name: "Africa"}
	f.africa.ID = uuid.New()
	f.continents.On("GetByID", mock.Anything, f.africa.ID).Return(f.africa, nil)

	return f
}

func TestCountryUseCase_Create(t *testing.T) {
	ctx := context.Background()
	req := dto.CountryRequest{Name: "Nigeria", CountryCode: "NG", PhoneCode: "+234"}

	t.Run("missing continent wins over taken codes", func(t *testing.T) {
		f := newCountryFixture()
		missing := uuid.New()
		f.continents.On("GetByID", ctx, missing).Return(nil, errors.ErrContinentNotFound)

		r := req
		r.ContinentID = missing
		resp, err := f.uc.Create(ctx, r)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrContinentNotFound)
		f.countries.AssertNotCalled(t, "ExistsByCodes")
		f.countries.AssertNotCalled(t, "Create")
	})

	t.Run("taken codes rejected before write", func(t *testing.T) {
		f := newCountryFixture()
		f.countries.On("ExistsByCodes", ctx, "NG", "+234", uuid.Nil).Return(true, nil)

		r := req
		r.ContinentID = f.africa.ID
		resp, err := f.uc.Create(ctx, r)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrCountryConflict)
		f.countries.AssertNotCalled(t, "Create")
	})

	t.Run("created country carries continent name", func(t *testing.T) {
		f := newCountryFixture()
		f.countries.On("ExistsByCodes", ctx, "NG", "+234", uuid.Nil).Return(false, nil)
		f.countries.On("Create", ctx, mock.AnythingOfType("*domain.Country")).Return(nil)

		r := req
		r.ContinentID = f.africa.ID
		resp, err := f.uc.Create(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, "Nigeria", resp.Name)
		assert.Equal(t, "Africa", resp.ContinentName)
	})
}

func TestCountryUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("own codes excluded from probe", func(t *testing.T) {
		f := newCountryFixture()
		id := uuid.New()

		persisted := &domain.Country{Name: "Nigeria", CountryCode: "NG", PhoneCode: "+234", ContinentID: f.africa.ID}
		persisted.ID = id

		f.countries.On("ExistsByCodes", ctx, "NG", "+234", id).Return(false, nil)
		f.countries.On("Update", ctx, mock.AnythingOfType("*domain.Country")).Return(nil)
		f.countries.On("GetByID", ctx, id).Return(persisted, nil)

		resp, err := f.uc.Update(ctx, id, dto.CountryRequest{
			Name: "Nigeria", CountryCode: "NG", PhoneCode: "+234", ContinentID: f.africa.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Nigeria", resp.Name)
		f.countries.AssertExpectations(t)
	})

	t.Run("codes taken by another country rejected", func(t *testing.T) {
		f := newCountryFixture()
		id := uuid.New()
		f.countries.On("ExistsByCodes", ctx, "NG", "+234", id).Return(true, nil)

		_, err := f.uc.Update(ctx, id, dto.CountryRequest{
			Name: "Nigeria", CountryCode: "NG", PhoneCode: "+234", ContinentID: f.africa.ID,
		})
		assert.ErrorIs(t, err, errors.ErrCountryConflict)
		f.countries.AssertNotCalled(t, "Update")
	})
}

func TestCountryUseCase_ListByContinent(t *testing.T) {
	ctx := context.Background()
	f := newCountryFixture()

	nigeria := &domain.Country{Name: "Nigeria", ContinentID: f.africa.ID}
	nigeria.ID = uuid.New()
	f.countries.On("ListByParent", ctx, f.africa.ID).Return([]*domain.Country{nigeria}, nil)

	resp, err := f.uc.ListByContinent(ctx, f.africa.ID)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Africa", resp[0].ContinentName)
}
