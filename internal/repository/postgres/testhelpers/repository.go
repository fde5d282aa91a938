package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewTenantRepositoryForTest creates a tenant repository with test database and logger
func NewTenantRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TenantRepository {
	return postgres.NewTenantRepository(NewDBForTest(db, logger))
}

// NewClientRepositoryForTest creates a client repository with test database and logger
func NewClientRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ClientRepository {
	return postgres.NewClientRepository(NewDBForTest(db, logger))
}

// NewContinentRepositoryForTest creates a continent repository with test database and logger
func NewContinentRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.NodeRepository[*domain.Continent] {
	return postgres.NewContinentRepository(NewDBForTest(db, logger))
}

// NewCountryRepositoryForTest creates a country repository with test database and logger
func NewCountryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CountryRepository {
	return postgres.NewCountryRepository(NewDBForTest(db, logger))
}

// NewStateRepositoryForTest creates a state repository with test database and logger
func NewStateRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.NodeRepository[*domain.State] {
	return postgres.NewStateRepository(NewDBForTest(db, logger))
}

// NewCityRepositoryForTest creates a city repository with test database and logger
func NewCityRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.NodeRepository[*domain.City] {
	return postgres.NewCityRepository(NewDBForTest(db, logger))
}

// NewAreaRepositoryForTest creates an area repository with test database and logger
func NewAreaRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.NodeRepository[*domain.Area] {
	return postgres.NewAreaRepository(NewDBForTest(db, logger))
}

// NewLocationRepositoryForTest creates a location repository with test database and logger
func NewLocationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LocationRepository {
	return postgres.NewLocationRepository(NewDBForTest(db, logger))
}
