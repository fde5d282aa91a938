package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/usecase/dto"
)

// ContinentUseCase - корневой уровень иерархии. Континент привязан к
// клиенту, имя уникально во всём реестре.
type ContinentUseCase struct {
	reg        registry[*domain.Continent]
	clientRepo repository.ClientRepository
	cacheRepo  repository.CacheRepository
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewContinentUseCase - создание нового ContinentUseCase
func NewContinentUseCase(
	continentRepo repository.NodeRepository[*domain.Continent],
	clientRepo repository.ClientRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ContinentUseCase {
	parentExists := func(ctx context.Context, clientID uuid.UUID) error {
		exists, err := clientRepo.Exists(ctx, clientID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ErrClientNotFound
		}
		return nil
	}
	return &ContinentUseCase{
		reg:        newRegistry(continentRepo, parentExists, "continent", logger),
		clientRepo: clientRepo,
		cacheRepo:  cacheRepo,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Create - создание континента под клиентом из заголовка CLIENT-ID
func (uc *ContinentUseCase) Create(ctx context.Context, clientID uuid.UUID, req dto.CreateContinentRequest) (*dto.ContinentResponse, error) {
	continent := &domain.Continent{
		Name:     req.Name,
		ClientID: clientID,
	}
	if err := uc.reg.create(ctx, continent); err != nil {
		return nil, err
	}
	return dto.NewContinentResponse(continent), nil
}

// Update - переименование континента; привязка к клиенту сохраняется
func (uc *ContinentUseCase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContinentRequest) (*dto.ContinentResponse, error) {
	existing, err := uc.reg.get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	updated, err := uc.reg.update(ctx, id, existing)
	if err != nil {
		return nil, err
	}
	return dto.NewContinentResponse(updated), nil
}

// Get - континент по идентификатору
func (uc *ContinentUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.ContinentResponse, error) {
	continent, err := uc.reg.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewContinentResponse(continent), nil
}

// List - все континенты
func (uc *ContinentUseCase) List(ctx context.Context) ([]*dto.ContinentResponse, error) {
	continents, err := uc.reg.list(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(continents), nil
}

// Search - поиск континентов по подстроке имени, с кэшированием
func (uc *ContinentUseCase) Search(ctx context.Context, name string) ([]*dto.ContinentResponse, error) {
	return cachedSearch(ctx, uc.cacheRepo, uc.logger, searchKey("continent", name), uc.cacheTTL,
		func() ([]*dto.ContinentResponse, error) {
			continents, err := uc.reg.repo.SearchByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return uc.toResponses(continents), nil
		})
}

func (uc *ContinentUseCase) toResponses(continents []*domain.Continent) []*dto.ContinentResponse {
	responses := make([]*dto.ContinentResponse, 0, len(continents))
	for _, c := range continents {
		responses = append(responses, dto.NewContinentResponse(c))
	}
	return responses
}
