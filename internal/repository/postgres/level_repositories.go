package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/pkg/errors"
)

// NewContinentRepository создает хранилище континентов; имя уникально во
// всём реестре, родительская ссылка - клиент
func NewContinentRepository(db *DB) repository.NodeRepository[*domain.Continent] {
	return newNodeRepository[domain.Continent](db, nodeSpec{
		table:        "continents",
		parentColumn: "client_id",
		scopeWide:    true,
		columns:      []string{"name", "client_id"},
		notFound:     errors.ErrContinentNotFound,
		conflict:     errors.ErrContinentConflict,
	}, func(c *domain.Continent) map[string]interface{} {
		return map[string]interface{}{
			"name":      c.Name,
			"client_id": c.ClientID,
		}
	})
}

type countryRepository struct {
	*nodeRepository[domain.Country, *domain.Country]
}

// NewCountryRepository создает хранилище стран; имя, код страны и
// телефонный код уникальны во всём реестре
func NewCountryRepository(db *DB) repository.CountryRepository {
	return &countryRepository{
		nodeRepository: newNodeRepository[domain.Country](db, nodeSpec{
			table:        "countries",
			parentColumn: "continent_id",
			scopeWide:    true,
			columns:      []string{"name", "country_code", "phone_code", "flag", "continent_id"},
			notFound:     errors.ErrCountryNotFound,
			conflict:     errors.ErrCountryConflict,
		}, func(c *domain.Country) map[string]interface{} {
			return map[string]interface{}{
				"name":         c.Name,
				"country_code": c.CountryCode,
				"phone_code":   c.PhoneCode,
				"flag":         c.Flag,
				"continent_id": c.ContinentID,
			}
		}),
	}
}

func (r *countryRepository) ExistsByCodes(ctx context.Context, countryCode, phoneCode string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM countries
		 WHERE (country_code = $1 OR phone_code = $2) AND id <> $3)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, countryCode, phoneCode, excludeID); err != nil {
		return false, r.wrapError("exists by codes", err)
	}
	return exists, nil
}

// NewStateRepository создает хранилище штатов; имя уникально в пределах страны
func NewStateRepository(db *DB) repository.NodeRepository[*domain.State] {
	return newNodeRepository[domain.State](db, nodeSpec{
		table:        "states",
		parentColumn: "country_id",
		columns:      []string{"name", "country_id"},
		notFound:     errors.ErrStateNotFound,
		conflict:     errors.ErrStateConflict,
	}, func(s *domain.State) map[string]interface{} {
		return map[string]interface{}{
			"name":       s.Name,
			"country_id": s.CountryID,
		}
	})
}

// NewCityRepository создает хранилище городов; имя уникально в пределах штата
func NewCityRepository(db *DB) repository.NodeRepository[*domain.City] {
	return newNodeRepository[domain.City](db, nodeSpec{
		table:        "cities",
		parentColumn: "state_id",
		columns:      []string{"name", "state_id"},
		notFound:     errors.ErrCityNotFound,
		conflict:     errors.ErrCityConflict,
	}, func(c *domain.City) map[string]interface{} {
		return map[string]interface{}{
			"name":     c.Name,
			"state_id": c.StateID,
		}
	})
}

// NewAreaRepository создает хранилище районов; имя уникально в пределах города
func NewAreaRepository(db *DB) repository.NodeRepository[*domain.Area] {
	return newNodeRepository[domain.Area](db, nodeSpec{
		table:        "areas",
		parentColumn: "city_id",
		columns:      []string{"name", "city_id"},
		notFound:     errors.ErrAreaNotFound,
		conflict:     errors.ErrAreaConflict,
	}, func(a *domain.Area) map[string]interface{} {
		return map[string]interface{}{
			"name":    a.Name,
			"city_id": a.CityID,
		}
	})
}

type locationRepository struct {
	*nodeRepository[domain.Location, *domain.Location]
}

// NewLocationRepository создает хранилище локаций; ограничения уникальности
// имени у листового уровня нет
func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		nodeRepository: newNodeRepository[domain.Location](db, nodeSpec{
			table:        "locations",
			parentColumn: "area_id",
			noUniqueness: true,
			columns:      []string{"house_address", "street_name", "free_text", "latitude", "longitude", "area_id"},
			notFound: errors.ErrLocationNotFound,
			// таблица локаций без уникальных индексов, конфликт невозможен
			conflict: errors.ErrDatabaseError,
		}, func(l *domain.Location) map[string]interface{} {
			return map[string]interface{}{
				"house_address": l.HouseAddress,
				"street_name":   l.StreetName,
				"free_text":     l.FreeText,
				"latitude":      l.Latitude,
				"longitude":     l.Longitude,
				"area_id":       l.AreaID,
			}
		}),
	}
}

func (r *locationRepository) SearchByAddress(ctx context.Context, term string) ([]*domain.Location, error) {
	query := `SELECT * FROM locations
		 WHERE house_address ILIKE '%' || $1 || '%'
		    OR street_name ILIKE '%' || $1 || '%'
		 ORDER BY house_address`
	return r.selectNodes(ctx, query, term)
}
