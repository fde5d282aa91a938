package usecase_test

import (
	"context"
	"encoding/json"
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

type cityFixture struct {
	continents *MockNodeRepository[*domain.Continent]
	countries  *MockCountryRepository
	states     *MockNodeRepository[*domain.State]
	cities     *MockNodeRepository[*domain.City]
	cache      *MockCacheRepository
	uc         *usecase.CityUseCase

	usa      *domain.Country
	illinois *domain.State
}

func newCityFixture() *cityFixture {
	f := &cityFixture{
		continents: &MockNodeRepository[*domain.Continent]{},
		countries:  &MockCountryRepository{},
		states:     &MockNodeRepository[*domain.State]{},
		cities:     &MockNodeRepository[*domain.City]{},
		cache:      &MockCacheRepository{},
	}

	resolver := usecase.NewAncestorResolver(f.continents, f.countries, f.states, f.cities, &MockNodeRepository[*domain.Area]{})
	f.uc = usecase.NewCityUseCase(f.cities, f.states, resolver, f.cache, zap.NewNop(), time.Minute)

	northAmerica := &domain.Continent{Name: "North America"}
	northAmerica.ID = uuid.New()
	f.usa = &domain.Country{Name: "USA", ContinentID: northAmerica.ID}
	f.usa.ID = uuid.New()
	f.illinois = &domain.State{Name: "Illinois", CountryID: f.usa.ID}
	f.illinois.ID = uuid.New()

	f.continents.On("GetByID", mock.Anything, northAmerica.ID).Return(northAmerica, nil)
	f.countries.On("GetByID", mock.Anything, f.usa.ID).Return(f.usa, nil)
	f.states.On("GetByID", mock.Anything, f.illinois.ID).Return(f.illinois, nil)

	return f
}

func TestCityUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing state checked before anything else", func(t *testing.T) {
		f := newCityFixture()
		missing := uuid.New()
		f.states.On("GetByID", ctx, missing).Return(nil, errors.ErrStateNotFound)

		resp, err := f.uc.Create(ctx, dto.CityRequest{Name: "Springfield", StateID: missing})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrStateNotFound)
		f.cities.AssertNotCalled(t, "Create")
	})

	t.Run("created city carries ancestor names", func(t *testing.T) {
		f := newCityFixture()
		f.cities.On("Create", ctx, mock.AnythingOfType("*domain.City")).Return(nil)

		resp, err := f.uc.Create(ctx, dto.CityRequest{Name: "Springfield", StateID: f.illinois.ID})
		require.NoError(t, err)
		assert.Equal(t, "Springfield", resp.Name)
		assert.Equal(t, "Illinois", resp.StateName)
		assert.Equal(t, "USA", resp.CountryName)
		f.cities.AssertExpectations(t)
	})

	t.Run("duplicate name in state propagates conflict", func(t *testing.T) {
		f := newCityFixture()
		f.cities.On("Create", ctx, mock.AnythingOfType("*domain.City")).Return(errors.ErrCityConflict)

		resp, err := f.uc.Create(ctx, dto.CityRequest{Name: "Springfield", StateID: f.illinois.ID})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrCityConflict)
	})
}

func TestCityUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("parent check precedes self check", func(t *testing.T) {
		f := newCityFixture()
		missing := uuid.New()
		f.states.On("GetByID", ctx, missing).Return(nil, errors.ErrStateNotFound)

		_, err := f.uc.Update(ctx, uuid.New(), dto.CityRequest{Name: "Springfield", StateID: missing})
		assert.ErrorIs(t, err, errors.ErrStateNotFound)
		f.cities.AssertNotCalled(t, "Update")
	})

	t.Run("missing city propagates not found", func(t *testing.T) {
		f := newCityFixture()
		f.cities.On("Update", ctx, mock.AnythingOfType("*domain.City")).Return(errors.ErrCityNotFound)

		_, err := f.uc.Update(ctx, uuid.New(), dto.CityRequest{Name: "Springfield", StateID: f.illinois.ID})
		assert.ErrorIs(t, err, errors.ErrCityNotFound)
	})

	t.Run("updated state reloaded after write", func(t *testing.T) {
		f := newCityFixture()
		id := uuid.New()

		persisted := &domain.City{Name: "Springfield", StateID: f.illinois.ID}
		persisted.ID = id

		f.cities.On("Update", ctx, mock.AnythingOfType("*domain.City")).Return(nil)
		f.cities.On("GetByID", ctx, id).Return(persisted, nil)

		resp, err := f.uc.Update(ctx, id, dto.CityRequest{Name: "Springfield", StateID: f.illinois.ID})
		require.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "Illinois", resp.StateName)
	})
}

func TestCityUseCase_ListByState(t *testing.T) {
	ctx := context.Background()

	t.Run("empty state yields empty list", func(t *testing.T) {
		f := newCityFixture()
		f.cities.On("ListByParent", ctx, f.illinois.ID).Return([]*domain.City{}, nil)

		resp, err := f.uc.ListByState(ctx, f.illinois.ID)
		require.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("missing state rejected", func(t *testing.T) {
		f := newCityFixture()
		missing := uuid.New()
		f.states.On("GetByID", ctx, missing).Return(nil, errors.ErrStateNotFound)

		_, err := f.uc.ListByState(ctx, missing)
		assert.ErrorIs(t, err, errors.ErrStateNotFound)
	})
}

func TestCityUseCase_ListByCountry(t *testing.T) {
	ctx := context.Background()

	t.Run("descends every state of the country", func(t *testing.T) {
		f := newCityFixture()

		ohio := &domain.State{Name: "Ohio", CountryID: f.usa.ID}
		ohio.ID = uuid.New()

		chicago := &domain.City{Name: "Chicago", StateID: f.illinois.ID}
		chicago.ID = uuid.New()
		springfield := &domain.City{Name: "Springfield", StateID: f.illinois.ID}
		springfield.ID = uuid.New()

		f.states.On("ListByParent", ctx, f.usa.ID).Return([]*domain.State{f.illinois, ohio}, nil)
		f.cities.On("ListByParent", ctx, f.illinois.ID).Return([]*domain.City{chicago, springfield}, nil)
		f.cities.On("ListByParent", ctx, ohio.ID).Return([]*domain.City{}, nil)

		resp, err := f.uc.ListByCountry(ctx, f.usa.ID)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "Chicago", resp[0].Name)
		assert.Equal(t, "Illinois", resp[0].StateName)
		assert.Equal(t, "USA", resp[0].CountryName)
		assert.Equal(t, "Springfield", resp[1].Name)
		f.cities.AssertExpectations(t)
	})

	t.Run("country without states yields empty list", func(t *testing.T) {
		f := newCityFixture()
		f.states.On("ListByParent", ctx, f.usa.ID).Return([]*domain.State{}, nil)

		resp, err := f.uc.ListByCountry(ctx, f.usa.ID)
		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("missing country rejected before descent", func(t *testing.T) {
		f := newCityFixture()
		missing := uuid.New()
		f.countries.On("GetByID", ctx, missing).Return(nil, errors.ErrCountryNotFound)

		_, err := f.uc.ListByCountry(ctx, missing)
		assert.ErrorIs(t, err, errors.ErrCountryNotFound)
		f.states.AssertNotCalled(t, "ListByParent")
	})
}

func TestCityUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss falls through and populates", func(t *testing.T) {
		f := newCityFixture()

		city := &domain.City{Name: "Springfield", StateID: f.illinois.ID}
		city.ID = uuid.New()

		f.cache.On("Get", ctx, "search:city:spring").Return(nil, nil)
		f.cities.On("SearchByName", ctx, "spring").Return([]*domain.City{city}, nil)
		f.cache.On("Set", ctx, "search:city:spring", mock.Anything, time.Minute).Return(nil)

		resp, err := f.uc.Search(ctx, "spring")
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Springfield", resp[0].Name)
		f.cache.AssertExpectations(t)
	})

	t.Run("cache hit skips database", func(t *testing.T) {
		f := newCityFixture()

		cached := []*dto.CityResponse{{ID: uuid.New(), Name: "Springfield"}}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		f.cache.On("Get", ctx, "search:city:spring").Return(data, nil)

		resp, err := f.uc.Search(ctx, "spring")
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Springfield", resp[0].Name)
		f.cities.AssertNotCalled(t, "SearchByName")
	})

	t.Run("cache failure degrades to database", func(t *testing.T) {
		f := newCityFixture()

		f.cache.On("Get", ctx, "search:city:spring").Return(nil, errors.ErrCacheError)
		f.cities.On("SearchByName", ctx, "spring").Return([]*domain.City{}, nil)
		f.cache.On("Set", ctx, "search:city:spring", mock.Anything, time.Minute).Return(nil)

		resp, err := f.uc.Search(ctx, "spring")
		require.NoError(t, err)
		assert.Empty(t, resp)
	})
}
