package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/pkg/apikey"
	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/repository/postgres/testhelpers"
)

// HierarchyRepositoryTestSuite tests the six level repositories with a real database
type HierarchyRepositoryTestSuite struct {
	suite.Suite
	testDB     *testhelpers.TestDB
	tenants    repository.TenantRepository
	clients    repository.ClientRepository
	continents repository.NodeRepository[*domain.Continent]
	countries  repository.CountryRepository
	states     repository.NodeRepository[*domain.State]
	cities     repository.NodeRepository[*domain.City]
	areas      repository.NodeRepository[*domain.Area]
	locations  repository.LocationRepository
	ctx        context.Context

	client *domain.Client
}

// SetupSuite runs once before all tests in the suite
func (s *HierarchyRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := s.testDB.Cleanup(context.Background())
	s.NoError(err, "Failed to cleanup test database")

	// Apply migrations (skip if tables already exist)
	_ = testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)

	s.tenants = testhelpers.NewTenantRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.clients = testhelpers.NewClientRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.continents = testhelpers.NewContinentRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.countries = testhelpers.NewCountryRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.states = testhelpers.NewStateRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.cities = testhelpers.NewCityRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.areas = testhelpers.NewAreaRepositoryForTest(s.testDB.DB, s.testDB.Logger)
	s.locations = testhelpers.NewLocationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *HierarchyRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test: every test starts from an empty registry
// with one tenant and one client
func (s *HierarchyRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err, "Failed to cleanup test database")

	key := apikey.Generate()
	tenant := &domain.Tenant{
		Name:            "Acme",
		Email:           "ops@acme.com",
		APIKeyHash:      apikey.Hash(key),
		EncryptedAPIKey: "encrypted",
		IsActive:        true,
	}
	tenant.CreatedBy = "SYSTEM"
	tenant.ModifiedBy = "SYSTEM"
	s.NoError(s.tenants.Create(s.ctx, tenant))

	s.client = &domain.Client{Name: "Logistics", TenantID: tenant.ID}
	s.client.CreatedBy = "SYSTEM"
	s.client.ModifiedBy = "SYSTEM"
	s.NoError(s.clients.Create(s.ctx, s.client))
}

func (s *HierarchyRepositoryTestSuite) createContinent(name string) *domain.Continent {
	continent := &domain.Continent{Name: name, ClientID: s.client.ID}
	continent.CreatedBy = "SYSTEM"
	continent.ModifiedBy = "SYSTEM"
	s.Require().NoError(s.continents.Create(s.ctx, continent))
	return continent
}

func (s *HierarchyRepositoryTestSuite) createCountry(name, countryCode, phoneCode string, continentID uuid.UUID) *domain.Country {
	country := &domain.Country{
		Name:        name,
		CountryCode: countryCode,
		PhoneCode:   phoneCode,
		ContinentID: continentID,
	}
	country.CreatedBy = "SYSTEM"
	country.ModifiedBy = "SYSTEM"
	s.Require().NoError(s.countries.Create(s.ctx, country))
	return country
}

func (s *HierarchyRepositoryTestSuite) createState(name string, countryID uuid.UUID) *domain.State {
	state := &domain.State{Name: name, CountryID: countryID}
	state.CreatedBy = "SYSTEM"
	state.ModifiedBy = "SYSTEM"
	s.Require().NoError(s.states.Create(s.ctx, state))
	return state
}

func (s *HierarchyRepositoryTestSuite) createCity(name string, stateID uuid.UUID) *domain.City {
	city := &domain.City{Name: name, StateID: stateID}
	city.CreatedBy = "SYSTEM"
	city.ModifiedBy = "SYSTEM"
	s.Require().NoError(s.cities.Create(s.ctx, city))
	return city
}

func (s *HierarchyRepositoryTestSuite) createArea(name string, cityID uuid.UUID) *domain.Area {
	area := &domain.Area{Name: name, CityID: cityID}
	area.CreatedBy = "SYSTEM"
	area.ModifiedBy = "SYSTEM"
	s.Require().NoError(s.areas.Create(s.ctx, area))
	return area
}

func (s *HierarchyRepositoryTestSuite) createLocation(houseAddress, streetName string, areaID uuid.UUID) *domain.Location {
	location := &domain.Location{
		HouseAddress: houseAddress,
		StreetName:   streetName,
		Latitude:     6.6018,
		Longitude:    3.3515,
		AreaID:       areaID,
	}
	location.CreatedBy = "SYSTEM"
	location.ModifiedBy = "SYSTEM"
	s.Require().NoError(s.locations.Create(s.ctx, location))
	return location
}

// ============================================================================
// Create Tests
// ============================================================================

func (s *HierarchyRepositoryTestSuite) TestCreate_FullChain() {
	continent := s.createContinent("Africa")
	country := s.createCountry("Nigeria", "NG", "+234", continent.ID)
	state := s.createState("Lagos", country.ID)
	city := s.createCity("Ikeja", state.ID)
	area := s.createArea("Allen", city.ID)
	location := s.createLocation("12", "Allen Avenue", area.ID)

	s.NotEqual(uuid.Nil, location.ID)
	s.False(location.DateCreated.IsZero())

	found, err := s.locations.GetByID(s.ctx, location.ID)
	s.NoError(err)
	s.Equal("12", found.HouseAddress)
	s.Equal("Allen Avenue", found.StreetName)
	s.Equal(area.ID, found.AreaID)
	s.InDelta(6.6018, found.Latitude, 0.0001)
	s.InDelta(3.3515, found.Longitude, 0.0001)
}

func (s *HierarchyRepositoryTestSuite) TestCreate_ContinentNameUniqueRegistryWide() {
	s.createContinent("Africa")

	duplicate := &domain.Continent{Name: "Africa", ClientID: s.client.ID}
	duplicate.CreatedBy = "SYSTEM"
	duplicate.ModifiedBy = "SYSTEM"

	err := s.continents.Create(s.ctx, duplicate)

	s.ErrorIs(err, errors.ErrContinentConflict)
}

func (s *HierarchyRepositoryTestSuite) TestCreate_StateNameScopedToCountry() {
	continent := s.createContinent("Africa")
	nigeria := s.createCountry("Nigeria", "NG", "+234", continent.ID)
	ghana := s.createCountry("Ghana", "GH", "+233", continent.ID)

	s.createState("Western", nigeria.ID)

	// same name under a different country is not a conflict
	other := &domain.State{Name: "Western", CountryID: ghana.ID}
	other.CreatedBy = "SYSTEM"
	other.ModifiedBy = "SYSTEM"
	s.NoError(s.states.Create(s.ctx, other))

	// repeat within the same country conflicts
	duplicate := &domain.State{Name: "Western", CountryID: nigeria.ID}
	duplicate.CreatedBy = "SYSTEM"
	duplicate.ModifiedBy = "SYSTEM"
	s.ErrorIs(s.states.Create(s.ctx, duplicate), errors.ErrStateConflict)
}

func (s *HierarchyRepositoryTestSuite) TestCreate_CityNameScopedToState() {
	continent := s.createContinent("North America")
	usa := s.createCountry("United States", "US", "+1", continent.ID)
	illinois := s.createState("Illinois", usa.ID)
	ohio := s.createState("Ohio", usa.ID)

	s.createCity("Springfield", illinois.ID)

	other := &domain.City{Name: "Springfield", StateID: ohio.ID}
	other.CreatedBy = "SYSTEM"
	other.ModifiedBy = "SYSTEM"
	s.NoError(s.cities.Create(s.ctx, other))

	duplicate := &domain.City{Name: "Springfield", StateID: illinois.ID}
	duplicate.CreatedBy = "SYSTEM"
	duplicate.ModifiedBy = "SYSTEM"
	s.ErrorIs(s.cities.Create(s.ctx, duplicate), errors.ErrCityConflict)
}

func (s *HierarchyRepositoryTestSuite) TestCreate_LocationsHaveNoUniqueness() {
	continent := s.createContinent("Africa")
	country := s.createCountry("Nigeria", "NG", "+234", continent.ID)
	state := s.createState("Lagos", country.ID)
	city := s.createCity("Ikeja", state.ID)
	area := s.createArea("Allen", city.ID)

	s.createLocation("12", "Allen Avenue", area.ID)
	s.createLocation("12", "Allen Avenue", area.ID)

	locations, err := s.locations.ListByParent(s.ctx, area.ID)
	s.NoError(err)
	s.Len(locations, 2)
}

// ============================================================================
// Update Tests
// ============================================================================

func (s *HierarchyRepositoryTestSuite) TestUpdate_SelfRenameDoesNotConflict() {
	continent := s.createContinent("Africa")
	country := s.createCountry("Nigeria", "NG", "+234", continent.ID)
	state := s.createState("Lagos", country.ID)

	// a node does not conflict with its own name
	state.ModifiedBy = "SYSTEM"
	s.NoError(s.states.Update(s.ctx, state))

	state.Name = "Lagos State"
	s.NoError(s.states.Update(s.ctx, state))

	found, err := s.states.GetByID(s.ctx, state.ID)
	s.NoError(err)
	s.Equal("Lagos State", found.Name)
}

func (s *HierarchyRepositoryTestSuite) TestUpdate_RenameToTakenNameConflicts() {
	continent := s.createContinent("Africa")
	country := s.createCountry("Nigeria", "NG", "+234", continent.ID)
	s.createState("Lagos", country.ID)
	kano := s.createState("Kano", country.ID)

	kano.Name = "Lagos"
	kano.ModifiedBy = "SYSTEM"

	s.ErrorIs(s.states.Update(s.ctx, kano), errors.ErrStateConflict)
}

func (s *HierarchyRepositoryTestSuite) TestUpdate_NotFound() {
	missing := &domain.City{Name: "Atlantis", StateID: uuid.New()}
	missing.ID = uuid.New()
	missing.ModifiedBy = "SYSTEM"

	err := s.cities.Update(s.ctx, missing)

	s.ErrorIs(err, errors.ErrCityNotFound)
}

// ============================================================================
// Read Tests
// ============================================================================

func (s *HierarchyRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.countries.GetByID(s.ctx, uuid.New())

	s.ErrorIs(err, errors.ErrCountryNotFound)
}

func (s *HierarchyRepositoryTestSuite) TestListByParent() {
	continent := s.createContinent("Africa")
	nigeria := s.createCountry("Nigeria", "NG", "+234", continent.ID)
	ghana := s.createCountry("Ghana", "GH", "+233", continent.ID)
	s.createState("Lagos", nigeria.ID)
	s.createState("Kano", nigeria.ID)
	s.createState("Ashanti", ghana.ID)

	states, err := s.states.ListByParent(s.ctx, nigeria.ID)

	s.NoError(err)
	s.Len(states, 2)
	for _, state := range states {
		s.Equal(nigeria.ID, state.CountryID)
	}
}

func (s *HierarchyRepositoryTestSuite) TestListByParent_Empty() {
	continent := s.createContinent("Africa")
	country := s.createCountry("Nigeria", "NG", "+234", continent.ID)

	states, err := s.states.ListByParent(s.ctx, country.ID)

	s.NoError(err)
	s.Empty(states)
}

func (s *HierarchyRepositoryTestSuite) TestSearchByName_CaseInsensitiveSubstring() {
	continent := s.createContinent("North America")
	usa := s.createCountry("United States", "US", "+1", continent.ID)
	illinois := s.createState("Illinois", usa.ID)
	s.createCity("Springfield", illinois.ID)
	s.createCity("Chicago", illinois.ID)

	cities, err := s.cities.SearchByName(s.ctx, "SPRING")

	s.NoError(err)
	s.Len(cities, 1)
	s.Equal("Springfield", cities[0].Name)
}

// ============================================================================
// ExistsByCodes Tests
// ============================================================================

func (s *HierarchyRepositoryTestSuite) TestExistsByCodes() {
	continent := s.createContinent("Africa")
	nigeria := s.createCountry("Nigeria", "NG", "+234", continent.ID)

	// taken by another country
	taken, err := s.countries.ExistsByCodes(s.ctx, "NG", "+000", uuid.Nil)
	s.NoError(err)
	s.True(taken)

	taken, err = s.countries.ExistsByCodes(s.ctx, "XX", "+234", uuid.Nil)
	s.NoError(err)
	s.True(taken)

	// the record itself is excluded during update
	taken, err = s.countries.ExistsByCodes(s.ctx, "NG", "+234", nigeria.ID)
	s.NoError(err)
	s.False(taken)

	taken, err = s.countries.ExistsByCodes(s.ctx, "GH", "+233", uuid.Nil)
	s.NoError(err)
	s.False(taken)
}

// ============================================================================
// SearchByAddress Tests
// ============================================================================

func (s *HierarchyRepositoryTestSuite) TestSearchByAddress() {
	continent := s.createContinent("Africa")
	country := s.createCountry("Nigeria", "NG", "+234", continent.ID)
	state := s.createState("Lagos", country.ID)
	city := s.createCity("Ikeja", state.ID)
	area := s.createArea("Allen", city.ID)
	s.createLocation("12", "Allen Avenue", area.ID)
	s.createLocation("7", "Opebi Road", area.ID)

	// street match, case-insensitive
	byStreet, err := s.locations.SearchByAddress(s.ctx, "allen")
	s.NoError(err)
	s.Len(byStreet, 1)
	s.Equal("Allen Avenue", byStreet[0].StreetName)

	// house number match
	byHouse, err := s.locations.SearchByAddress(s.ctx, "7")
	s.NoError(err)
	s.Len(byHouse, 1)
	s.Equal("Opebi Road", byHouse[0].StreetName)

	none, err := s.locations.SearchByAddress(s.ctx, "nowhere")
	s.NoError(err)
	s.Empty(none)
}

// ============================================================================
// Test Suite Runner
// ============================================================================

func TestHierarchyRepository(t *testing.T) {
	suite.Run(t, new(HierarchyRepositoryTestSuite))
}
