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

// StateUseCase - штаты; имя уникально в пределах страны
type StateUseCase struct {
	reg       registry[*domain.State]
	resolver  *AncestorResolver
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewStateUseCase - создание нового StateUseCase
func NewStateUseCase(
	stateRepo repository.NodeRepository[*domain.State],
	countryRepo repository.CountryRepository,
	resolver *AncestorResolver,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StateUseCase {
	parentExists := func(ctx context.Context, countryID uuid.UUID) error {
		_, err := countryRepo.GetByID(ctx, countryID)
		return err
	}
	return &StateUseCase{
		reg:       newRegistry(stateRepo, parentExists, "state", logger),
		resolver:  resolver,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Create - создание штата в стране
func (uc *StateUseCase) Create(ctx context.Context, req dto.StateRequest) (*dto.StateResponse, error) {
	state := &domain.State{
		Name:      req.Name,
		CountryID: req.CountryID,
	}
	if err := uc.reg.create(ctx, state); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, state)
}

// Update - обновление штата, включая перенос в другую страну
func (uc *StateUseCase) Update(ctx context.Context, id uuid.UUID, req dto.StateRequest) (*dto.StateResponse, error) {
	state := &domain.State{
		Name:      req.Name,
		CountryID: req.CountryID,
	}
	updated, err := uc.reg.update(ctx, id, state)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, updated)
}

// Get - штат по идентификатору
func (uc *StateUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.StateResponse, error) {
	state, err := uc.reg.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, state)
}

// List - все штаты
func (uc *StateUseCase) List(ctx context.Context) ([]*dto.StateResponse, error) {
	states, err := uc.reg.list(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(ctx, states)
}

// ListByCountry - штаты страны
func (uc *StateUseCase) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]*dto.StateResponse, error) {
	// Цепочка предков одна на весь список
	anc, err := uc.resolver.FromCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	states, err := uc.reg.listByParent(ctx, countryID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.StateResponse, 0, len(states))
	for _, state := range states {
		responses = append(responses, dto.NewStateResponse(state, anc))
	}
	return responses, nil
}

// Search - поиск штатов по подстроке имени, с кэшированием
func (uc *StateUseCase) Search(ctx context.Context, name string) ([]*dto.StateResponse, error) {
	return cachedSearch(ctx, uc.cacheRepo, uc.logger, searchKey("state", name), uc.cacheTTL,
		func() ([]*dto.StateResponse, error) {
			states, err := uc.reg.repo.SearchByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return uc.toResponses(ctx, states)
		})
}

func (uc *StateUseCase) toResponse(ctx context.Context, state *domain.State) (*dto.StateResponse, error) {
	anc, err := uc.resolver.FromCountry(ctx, state.CountryID)
	if err != nil {
		return nil, err
	}
	return dto.NewStateResponse(state, anc), nil
}

func (uc *StateUseCase) toResponses(ctx context.Context, states []*domain.State) ([]*dto.StateResponse, error) {
	responses := make([]*dto.StateResponse, 0, len(states))
	for _, state := range states {
		resp, err := uc.toResponse(ctx, state)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
