package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/usecase/dto"
)

// LocationUseCase - листовой уровень иерархии. Имена локаций не
// уникальны, два одинаковых адреса в одном районе допустимы.
type LocationUseCase struct {
	reg          registry[*domain.Location]
	locationRepo repository.LocationRepository
	areaRepo     repository.NodeRepository[*domain.Area]
	cityRepo     repository.NodeRepository[*domain.City]
	stateRepo    repository.NodeRepository[*domain.State]
	resolver     *AncestorResolver
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewLocationUseCase - создание нового LocationUseCase
func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	areaRepo repository.NodeRepository[*domain.Area],
	cityRepo repository.NodeRepository[*domain.City],
	stateRepo repository.NodeRepository[*domain.State],
	resolver *AncestorResolver,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *LocationUseCase {
	parentExists := func(ctx context.Context, areaID uuid.UUID) error {
		_, err := areaRepo.GetByID(ctx, areaID)
		return err
	}
	return &LocationUseCase{
		reg:          newRegistry[*domain.Location](locationRepo, parentExists, "location", logger),
		locationRepo: locationRepo,
		areaRepo:     areaRepo,
		cityRepo:     cityRepo,
		stateRepo:    stateRepo,
		resolver:     resolver,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Create - создание локации в районе
func (uc *LocationUseCase) Create(ctx context.Context, req dto.LocationRequest) (*dto.LocationResponse, error) {
	location := uc.fromRequest(req)
	if err := uc.reg.create(ctx, location); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, location)
}

// Update - обновление локации, включая перенос в другой район
func (uc *LocationUseCase) Update(ctx context.Context, id uuid.UUID, req dto.LocationRequest) (*dto.LocationResponse, error) {
	updated, err := uc.reg.update(ctx, id, uc.fromRequest(req))
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, updated)
}

// Get - локация по идентификатору
func (uc *LocationUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, error) {
	location, err := uc.reg.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, location)
}

// List - все локации
func (uc *LocationUseCase) List(ctx context.Context) ([]*dto.LocationResponse, error) {
	locations, err := uc.reg.list(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(ctx, locations)
}

// ListByArea - локации района
func (uc *LocationUseCase) ListByArea(ctx context.Context, areaID uuid.UUID) ([]*dto.LocationResponse, error) {
	anc, err := uc.resolver.FromArea(ctx, areaID)
	if err != nil {
		return nil, err
	}
	locations, err := uc.reg.listByParent(ctx, areaID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LocationResponse, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, dto.NewLocationResponse(location, anc))
	}
	return responses, nil
}

// ListByCity - локации всех районов города
func (uc *LocationUseCase) ListByCity(ctx context.Context, cityID uuid.UUID) ([]*dto.LocationResponse, error) {
	anc, err := uc.resolver.FromCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return uc.collectByCity(ctx, anc)
}

// ListByState - локации всех городов штата
func (uc *LocationUseCase) ListByState(ctx context.Context, stateID uuid.UUID) ([]*dto.LocationResponse, error) {
	anc, err := uc.resolver.FromState(ctx, stateID)
	if err != nil {
		return nil, err
	}
	return uc.collectByState(ctx, anc)
}

// ListByCountry - локации всей страны
func (uc *LocationUseCase) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]*dto.LocationResponse, error) {
	anc, err := uc.resolver.FromCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	states, err := uc.stateRepo.ListByParent(ctx, anc.CountryID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LocationResponse, 0)
	for _, state := range states {
		stateAnc := *anc
		stateAnc.StateID = state.ID
		stateAnc.StateName = state.Name
		part, err := uc.collectByState(ctx, &stateAnc)
		if err != nil {
			return nil, err
		}
		responses = append(responses, part...)
	}
	return responses, nil
}

// Search - поиск локаций по подстроке адреса или улицы, с кэшированием
func (uc *LocationUseCase) Search(ctx context.Context, term string) ([]*dto.LocationResponse, error) {
	return cachedSearch(ctx, uc.cacheRepo, uc.logger, searchKey("location", term), uc.cacheTTL,
		func() ([]*dto.LocationResponse, error) {
			locations, err := uc.locationRepo.SearchByAddress(ctx, term)
			if err != nil {
				return nil, err
			}
			return uc.toResponses(ctx, locations)
		})
}

func (uc *LocationUseCase) collectByState(ctx context.Context, anc *domain.Ancestry) ([]*dto.LocationResponse, error) {
	cities, err := uc.cityRepo.ListByParent(ctx, anc.StateID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LocationResponse, 0)
	for _, city := range cities {
		cityAnc := *anc
		cityAnc.CityID = city.ID
		cityAnc.CityName = city.Name
		part, err := uc.collectByCity(ctx, &cityAnc)
		if err != nil {
			return nil, err
		}
		responses = append(responses, part...)
	}
	return responses, nil
}

func (uc *LocationUseCase) collectByCity(ctx context.Context, anc *domain.Ancestry) ([]*dto.LocationResponse, error) {
	areas, err := uc.areaRepo.ListByParent(ctx, anc.CityID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LocationResponse, 0)
	for _, area := range areas {
		locations, err := uc.reg.listByParent(ctx, area.ID)
		if err != nil {
			return nil, err
		}
		areaAnc := *anc
		areaAnc.AreaID = area.ID
		areaAnc.AreaName = area.Name
		for _, location := range locations {
			responses = append(responses, dto.NewLocationResponse(location, &areaAnc))
		}
	}
	return responses, nil
}

func (uc *LocationUseCase) fromRequest(req dto.LocationRequest) *domain.Location {
	return &domain.Location{
		HouseAddress: req.HouseAddress,
		StreetName:   req.StreetName,
		FreeText:     req.FreeText,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		AreaID:       req.AreaID,
	}
}

func (uc *LocationUseCase) toResponse(ctx context.Context, location *domain.Location) (*dto.LocationResponse, error) {
	anc, err := uc.resolver.FromArea(ctx, location.AreaID)
	if err != nil {
		return nil, err
	}
	return dto.NewLocationResponse(location, anc), nil
}

func (uc *LocationUseCase) toResponses(ctx context.Context, locations []*domain.Location) ([]*dto.LocationResponse, error) {
	responses := make([]*dto.LocationResponse, 0, len(locations))
	for _, location := range locations {
		resp, err := uc.toResponse(ctx, location)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
