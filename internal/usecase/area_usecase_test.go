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

type areaFixture struct {
	continents *MockNodeRepository[*domain.Continent]
	countries  *MockCountryRepository
	states     *MockNodeRepository[*domain.State]
	cities     *MockNodeRepository[*domain.City]
	areas      *MockNodeRepository[*domain.Area]
	cache      *MockCacheRepository
	uc         *usecase.AreaUseCase

	nigeria *domain.Country
	lagos   *domain.State
}

func newAreaFixture() *areaFixture {
	f := &areaFixture{
		continents: &MockNodeRepository[*domain.Continent]{},
		countries:  &MockCountryRepository{},
		states:     &MockNodeRepository[*domain.State]{},
		cities:     &MockNodeRepository[*domain.City]{},
		areas:      &MockNodeRepository[*domain.Area]{},
		cache:      &MockCacheRepository{},
	}

	resolver := usecase.NewAncestorResolver(f.continents, f.countries, f.states, f.cities, f.areas)
	f.uc = usecase.NewAreaUseCase(f.areas, f.cities, f.states, resolver, f.cache, zap.NewNop(), time.Minute)

	africa := &domain.Continent{Name: "Africa"}
	africa.ID = uuid.New()
	f.nigeria = &domain.Country{Name: "Nigeria", ContinentID: africa.ID}
	f.nigeria.ID = uuid.New()
	f.lagos = &domain.State{Name: "Lagos", CountryID: f.nigeria.ID}
	f.lagos.ID = uuid.New()

	f.continents.On("GetByID", mock.Anything, africa.ID).Return(africa, nil)
	f.countries.On("GetByID", mock.Anything, f.nigeria.ID).Return(f.nigeria, nil)
	f.states.On("GetByID", mock.Anything, f.lagos.ID).Return(f.lagos, nil)

	return f
}

func (f *areaFixture) newCity(name string) *domain.City {
	city := &domain.City{Name: name, StateID: f.lagos.ID}
	city.ID = uuid.New()
	return city
}

func TestAreaUseCase_ListByState(t *testing.T) {
	ctx := context.Background()

	t.Run("descends every city of the state", func(t *testing.T) {
		f := newAreaFixture()

		ikeja := f.newCity("Ikeja")
		epe := f.newCity("Epe")

		allen := &domain.Area{Name: "Allen", CityID: ikeja.ID}
		allen.ID = uuid.New()
		oregun := &domain.Area{Name: "Oregun", CityID: ikeja.ID}
		oregun.ID = uuid.New()

		f.cities.On("ListByParent", ctx, f.lagos.ID).Return([]*domain.City{ikeja, epe}, nil)
		f.areas.On("ListByParent", ctx, ikeja.ID).Return([]*domain.Area{allen, oregun}, nil)
		f.areas.On("ListByParent", ctx, epe.ID).Return([]*domain.Area{}, nil)

		resp, err := f.uc.ListByState(ctx, f.lagos.ID)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "Allen", resp[0].Name)
		assert.Equal(t, "Ikeja", resp[0].CityName)
		assert.Equal(t, "Lagos", resp[0].StateName)
		assert.Equal(t, "Nigeria", resp[0].CountryName)
		assert.Equal(t, "Oregun", resp[1].Name)
		f.areas.AssertExpectations(t)
	})

	t.Run("state without cities yields empty list", func(t *testing.T) {
		f := newAreaFixture()
		f.cities.On("ListByParent", ctx, f.lagos.ID).Return([]*domain.City{}, nil)

		resp, err := f.uc.ListByState(ctx, f.lagos.ID)
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("cities without areas yield empty list", func(t *testing.T) {
		f := newAreaFixture()
		epe := f.newCity("Epe")

		f.cities.On("ListByParent", ctx, f.lagos.ID).Return([]*domain.City{epe}, nil)
		f.areas.On("ListByParent", ctx, epe.ID).Return([]*domain.Area{}, nil)

		resp, err := f.uc.ListByState(ctx, f.lagos.ID)
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("missing state rejected before descent", func(t *testing.T) {
		f := newAreaFixture()
		missing := uuid.New()
		f.states.On("GetByID", ctx, missing).Return(nil, errors.ErrStateNotFound)

		_, err := f.uc.ListByState(ctx, missing)
		assert.ErrorIs(t, err, errors.ErrStateNotFound)
		f.cities.AssertNotCalled(t, "ListByParent")
	})
}

func TestAreaUseCase_ListByCountry(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates across all states", func(t *testing.T) {
		f := newAreaFixture()

		kano := &domain.State{Name: "Kano", CountryID: f.nigeria.ID}
		kano.ID = uuid.New()

		ikeja := f.newCity("Ikeja")
		allen := &domain.Area{Name: "Allen", CityID: ikeja.ID}
		allen.ID = uuid.New()

		f.states.On("ListByParent", ctx, f.nigeria.ID).Return([]*domain.State{f.lagos, kano}, nil)
		f.cities.On("ListByParent", ctx, f.lagos.ID).Return([]*domain.City{ikeja}, nil)
		f.cities.On("ListByParent", ctx, kano.ID).Return([]*domain.City{}, nil)
		f.areas.On("ListByParent", ctx, ikeja.ID).Return([]*domain.Area{allen}, nil)

		resp, err := f.uc.ListByCountry(ctx, f.nigeria.ID)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Allen", resp[0].Name)
		assert.Equal(t, "Ikeja", resp[0].CityName)
		assert.Equal(t, "Lagos", resp[0].StateName)
		assert.Equal(t, "Nigeria", resp[0].CountryName)
		f.cities.AssertExpectations(t)
	})

	t.Run("country without states yields empty list", func(t *testing.T) {
		f := newAreaFixture()
		f.states.On("ListByParent", ctx, f.nigeria.ID).Return([]*domain.State{}, nil)

		resp, err := f.uc.ListByCountry(ctx, f.nigeria.ID)
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("missing country rejected before descent", func(t *testing.T) {
		f := newAreaFixture()
		missing := uuid.New()
		f.countries.On("GetByID", ctx, missing).Return(nil, errors.ErrCountryNotFound)

		_, err := f.uc.ListByCountry(ctx, missing)
		assert.ErrorIs(t, err, errors.ErrCountryNotFound)
		f.states.AssertNotCalled(t, "ListByParent")
	})
}

func TestAreaUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing city checked before anything else", func(t *testing.T) {
		f := newAreaFixture()
		missing := uuid.New()
		f.cities.On("GetByID", ctx, missing).Return(nil, errors.ErrCityNotFound)

		resp, err := f.uc.Create(ctx, dto.AreaRequest{Name: "Allen", CityID: missing})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrCityNotFound)
		f.areas.AssertNotCalled(t, "Create")
	})

	t.Run("created area carries ancestor names", func(t *testing.T) {
		f := newAreaFixture()
		ikeja := f.newCity("Ikeja")
		f.cities.On("GetByID", mock.Anything, ikeja.ID).Return(ikeja, nil)
		f.areas.On("Create", ctx, mock.AnythingOfType("*domain.Area")).Return(nil)

		resp, err := f.uc.Create(ctx, dto.AreaRequest{Name: "Allen", CityID: ikeja.ID})
		require.NoError(t, err)
		assert.Equal(t, "Allen", resp.Name)
		assert.Equal(t, "Ikeja", resp.CityName)
		assert.Equal(t, "Lagos", resp.StateName)
		assert.Equal(t, "Nigeria", resp.CountryName)
	})
}
