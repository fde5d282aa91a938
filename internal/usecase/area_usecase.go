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

// AreaUseCase - районы; имя уникально в пределах города
type AreaUseCase struct {
	reg       registry[*domain.Area]
	cityRepo  repository.NodeRepository[*domain.City]
	stateRepo repository.NodeRepository[*domain.State]
	resolver  *AncestorResolver
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewAreaUseCase - создание нового AreaUseCase
func NewAreaUseCase(
	areaRepo repository.NodeRepository[*domain.Area],
	cityRepo repository.NodeRepository[*domain.City],
	stateRepo repository.NodeRepository[*domain.State],
	resolver *AncestorResolver,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *AreaUseCase {
	parentExists := func(ctx context.Context, cityID uuid.UUID) error {
		_, err := cityRepo.GetByID(ctx, cityID)
		return err
	}
	return &AreaUseCase{
		reg:       newRegistry(areaRepo, parentExists, "area", logger),
		cityRepo:  cityRepo,
		stateRepo: stateRepo,
		resolver:  resolver,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Create - создание района в городе
func (uc *AreaUseCase) Create(ctx context.Context, req dto.AreaRequest) (*dto.AreaResponse, error) {
	area := &domain.Area{
		Name:   req.Name,
		CityID: req.CityID,
	}
	if err := uc.reg.create(ctx, area); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, area)
}

// Update - обновление района, включая перенос в другой город
func (uc *AreaUseCase) Update(ctx context.Context, id uuid.UUID, req dto.AreaRequest) (*dto.AreaResponse, error) {
	area := &domain.Area{
		Name:   req.Name,
		CityID: req.CityID,
	}
	updated, err := uc.reg.update(ctx, id, area)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, updated)
}

// Get - район по идентификатору
func (uc *AreaUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.AreaResponse, error) {
	area, err := uc.reg.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, area)
}

// List - все районы
func (uc *AreaUseCase) List(ctx context.Context) ([]*dto.AreaResponse, error) {
	areas, err := uc.reg.list(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(ctx, areas)
}

// ListByCity - районы города
func (uc *AreaUseCase) ListByCity(ctx context.Context, cityID uuid.UUID) ([]*dto.AreaResponse, error) {
	anc, err := uc.resolver.FromCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	areas, err := uc.reg.listByParent(ctx, cityID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AreaResponse, 0, len(areas))
	for _, area := range areas {
		responses = append(responses, dto.NewAreaResponse(area, anc))
	}
	return responses, nil
}

// ListByState - районы всех городов штата
func (uc *AreaUseCase) ListByState(ctx context.Context, stateID uuid.UUID) ([]*dto.AreaResponse, error) {
	anc, err := uc.resolver.FromState(ctx, stateID)
	if err != nil {
		return nil, err
	}
	return uc.collectByState(ctx, anc)
}

// ListByCountry - районы всех городов страны
func (uc *AreaUseCase) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]*dto.AreaResponse, error) {
	anc, err := uc.resolver.FromCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	states, err := uc.stateRepo.ListByParent(ctx, anc.CountryID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AreaResponse, 0)
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

// Search - поиск районов по подстроке имени, с кэшированием
func (uc *AreaUseCase) Search(ctx context.Context, name string) ([]*dto.AreaResponse, error) {
	return cachedSearch(ctx, uc.cacheRepo, uc.logger, searchKey("area", name), uc.cacheTTL,
		func() ([]*dto.AreaResponse, error) {
			areas, err := uc.reg.repo.SearchByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return uc.toResponses(ctx, areas)
		})
}

// collectByState - обход районов вниз по городам штата; StateID и
// StateName в anc уже заполнены
func (uc *AreaUseCase) collectByState(ctx context.Context, anc *domain.Ancestry) ([]*dto.AreaResponse, error) {
	cities, err := uc.cityRepo.ListByParent(ctx, anc.StateID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AreaResponse, 0)
	for _, city := range cities {
		areas, err := uc.reg.listByParent(ctx, city.ID)
		if err != nil {
			return nil, err
		}
		cityAnc := *anc
		cityAnc.CityID = city.ID
		cityAnc.CityName = city.Name
		for _, area := range areas {
			responses = append(responses, dto.NewAreaResponse(area, &cityAnc))
		}
	}
	return responses, nil
}

func (uc *AreaUseCase) toResponse(ctx context.Context, area *domain.Area) (*dto.AreaResponse, error) {
	anc, err := uc.resolver.FromCity(ctx, area.CityID)
	if err != nil {
		return nil, err
	}
	return dto.NewAreaResponse(area, anc), nil
}

func (uc *AreaUseCase) toResponses(ctx context.Context, areas []*domain.Area) ([]*dto.AreaResponse, error) {
	responses := make([]*dto.AreaResponse, 0, len(areas))
	for _, area := range areas {
		resp, err := uc.toResponse(ctx, area)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
