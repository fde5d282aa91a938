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

// CityUseCase - города; имя уникально в пределах штата
type CityUseCase struct {
	reg       registry[*domain.City]
	stateRepo repository.NodeRepository[*domain.State]
	resolver  *AncestorResolver
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewCityUseCase - создание нового CityUseCase
func NewCityUseCase(
	cityRepo repository.NodeRepository[*domain.City],
	stateRepo repository.NodeRepository[*domain.State],
	resolver *AncestorResolver,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CityUseCase {
	parentExists := func(ctx context.Context, stateID uuid.UUID) error {
		_, err := stateRepo.GetByID(ctx, stateID)
		return err
	}
	return &CityUseCase{
		reg:       newRegistry(cityRepo, parentExists, "city", logger),
		stateRepo: stateRepo,
		resolver:  resolver,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Create - создание города в штате
func (uc *CityUseCase) Create(ctx context.Context, req dto.CityRequest) (*dto.CityResponse, error) {
	city := &domain.City{
		Name:    req.Name,
		StateID: req.StateID,
	}
	if err := uc.reg.create(ctx, city); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, city)
}

// Update - обновление города, включая перенос в другой штат
func (uc *CityUseCase) Update(ctx context.Context, id uuid.UUID, req dto.CityRequest) (*dto.CityResponse, error) {
	city := &domain.City{
		Name:    req.Name,
		StateID: req.StateID,
	}
	updated, err := uc.reg.update(ctx, id, city)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, updated)
}

// Get - город по идентификатору
func (uc *CityUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.CityResponse, error) {
	city, err := uc.reg.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, city)
}

// List - все города
func (uc *CityUseCase) List(ctx context.Context) ([]*dto.CityResponse, error) {
	cities, err := uc.reg.list(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(ctx, cities)
}

// ListByState - города штата
func (uc *CityUseCase) ListByState(ctx context.Context, stateID uuid.UUID) ([]*dto.CityResponse, error) {
	anc, err := uc.resolver.FromState(ctx, stateID)
	if err != nil {
		return nil, err
	}
	cities, err := uc.reg.listByParent(ctx, stateID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CityResponse, 0, len(cities))
	for _, city := range cities {
		responses = append(responses, dto.NewCityResponse(city, anc))
	}
	return responses, nil
}

// ListByCountry - города страны; обход идёт вниз по штатам, объектного
// графа между уровнями нет
func (uc *CityUseCase) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]*dto.CityResponse, error) {
	anc, err := uc.resolver.FromCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	states, err := uc.stateRepo.ListByParent(ctx, countryID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CityResponse, 0)
	for _, state := range states {
		cities, err := uc.reg.listByParent(ctx, state.ID)
		if err != nil {
			return nil, err
		}
		stateAnc := *anc
		stateAnc.StateID = state.ID
		stateAnc.StateName = state.Name
		for _, city := range cities {
			responses = append(responses, dto.NewCityResponse(city, &stateAnc))
		}
	}
	return responses, nil
}

// Search - поиск городов по подстроке имени, с кэшированием
func (uc *CityUseCase) Search(ctx context.Context, name string) ([]*dto.CityResponse, error) {
	return cachedSearch(ctx, uc.cacheRepo, uc.logger, searchKey("city", name), uc.cacheTTL,
		func() ([]*dto.CityResponse, error) {
			cities, err := uc.reg.repo.SearchByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return uc.toResponses(ctx, cities)
		})
}

func (uc *CityUseCase) toResponse(ctx context.Context, city *domain.City) (*dto.CityResponse, error) {
	anc, err := uc.resolver.FromState(ctx, city.StateID)
	if err != nil {
		return nil, err
	}
	return dto.NewCityResponse(city, anc), nil
}

func (uc *CityUseCase) toResponses(ctx context.Context, cities []*domain.City) ([]*dto.CityResponse, error) {
	responses := make([]*dto.CityResponse, 0, len(cities))
	for _, city := range cities {
		resp, err := uc.toResponse(ctx, city)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
