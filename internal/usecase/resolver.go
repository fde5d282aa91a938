package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
)

// AncestorResolver - сборка имён предков узла явными запросами вверх по
// цепочке родителей. Ответы API денормализованы на момент чтения, связи
// между уровнями не кэшируются.
type AncestorResolver struct {
	continentRepo repository.NodeRepository[*domain.Continent]
	countryRepo   repository.CountryRepository
	stateRepo     repository.NodeRepository[*domain.State]
	cityRepo      repository.NodeRepository[*domain.City]
	areaRepo      repository.NodeRepository[*domain.Area]
}

// NewAncestorResolver - создание нового AncestorResolver
func NewAncestorResolver(
	continentRepo repository.NodeRepository[*domain.Continent],
	countryRepo repository.CountryRepository,
	stateRepo repository.NodeRepository[*domain.State],
	cityRepo repository.NodeRepository[*domain.City],
	areaRepo repository.NodeRepository[*domain.Area],
) *AncestorResolver {
	return &AncestorResolver{
		continentRepo: continentRepo,
		countryRepo:   countryRepo,
		stateRepo:     stateRepo,
		cityRepo:      cityRepo,
		areaRepo:      areaRepo,
	}
}

// FromContinent - цепочка предков, начинающаяся с континента
func (r *AncestorResolver) FromContinent(ctx context.Context, continentID uuid.UUID) (*domain.Ancestry, error) {
	continent, err := r.continentRepo.GetByID(ctx, continentID)
	if err != nil {
		return nil, err
	}
	return &domain.Ancestry{
		ContinentID:   continent.ID,
		ContinentName: continent.Name,
	}, nil
}

// FromCountry - цепочка предков, начинающаяся со страны
func (r *AncestorResolver) FromCountry(ctx context.Context, countryID uuid.UUID) (*domain.Ancestry, error) {
	country, err := r.countryRepo.GetByID(ctx, countryID)
	if err != nil {
		return nil, err
	}
	anc, err := r.FromContinent(ctx, country.ContinentID)
	if err != nil {
		return nil, err
	}
	anc.CountryID = country.ID
	anc.CountryName = country.Name
	return anc, nil
}

// FromState - цепочка предков, начинающаяся со штата
func (r *AncestorResolver) FromState(ctx context.Context, stateID uuid.UUID) (*domain.Ancestry, error) {
	state, err := r.stateRepo.GetByID(ctx, stateID)
	if err != nil {
		return nil, err
	}
	anc, err := r.FromCountry(ctx, state.CountryID)
	if err != nil {
		return nil, err
	}
	anc.StateID = state.ID
	anc.StateName = state.Name
	return anc, nil
}

// FromCity - цепочка предков, начинающаяся с города
func (r *AncestorResolver) FromCity(ctx context.Context, cityID uuid.UUID) (*domain.Ancestry, error) {
	city, err := r.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return nil, err
	}
	anc, err := r.FromState(ctx, city.StateID)
	if err != nil {
		return nil, err
	}
	anc.CityID = city.ID
	anc.CityName = city.Name
	return anc, nil
}

// FromArea - цепочка предков, начинающаяся с района
func (r *AncestorResolver) FromArea(ctx context.Context, areaID uuid.UUID) (*domain.Ancestry, error) {
	area, err := r.areaRepo.GetByID(ctx, areaID)
	if err != nil {
		return nil, err
	}
	anc, err := r.FromCity(ctx, area.CityID)
	if err != nil {
		return nil, err
	}
	anc.AreaID = area.ID
	anc.AreaName = area.Name
	return anc, nil
}
