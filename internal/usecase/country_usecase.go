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

// CountryUseCase - страны. Помимо имени, во всём реестре уникальны код
// страны и телефонный код.
type CountryUseCase struct {
	reg         registry[*domain.Country]
	countryRepo repository.CountryRepository
	resolver    *AncestorResolver
	cacheRepo   repository.CacheRepository
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewCountryUseCase - создание нового CountryUseCase
func NewCountryUseCase(
	countryRepo repository.CountryRepository,
	continentRepo repository.NodeRepository[*domain.Continent],
	resolver *AncestorResolver,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *CountryUseCase {
	parentExists := func(ctx context.Context, continentID uuid.UUID) error {
		_, err := continentRepo.GetByID(ctx, continentID)
		return err
	}
	return &CountryUseCase{
		reg:         newRegistry[*domain.Country](countryRepo, parentExists, "country", logger),
		countryRepo: countryRepo,
		resolver:    resolver,
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Create - создание страны; сначала проверяется континент, затем коды,
// имя проверяется внутри транзакции хранилища
func (uc *CountryUseCase) Create(ctx context.Context, req dto.CountryRequest) (*dto.CountryResponse, error) {
	if err := uc.reg.parentExists(ctx, req.ContinentID); err != nil {
		return nil, err
	}
	if err := uc.checkCodes(ctx, req, uuid.Nil); err != nil {
		return nil, err
	}

	country := &domain.Country{
		Name:        req.Name,
		CountryCode: req.CountryCode,
		PhoneCode:   req.PhoneCode,
		Flag:        req.Flag,
		ContinentID: req.ContinentID,
	}
	if err := uc.reg.create(ctx, country); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, country)
}

// Update - обновление страны, включая перенос на другой континент
func (uc *CountryUseCase) Update(ctx context.Context, id uuid.UUID, req dto.CountryRequest) (*dto.CountryResponse, error) {
	if err := uc.reg.parentExists(ctx, req.ContinentID); err != nil {
		return nil, err
	}
	if err := uc.checkCodes(ctx, req, id); err != nil {
		return nil, err
	}

	country := &domain.Country{
		Name:        req.Name,
		CountryCode: req.CountryCode,
		PhoneCode:   req.PhoneCode,
		Flag:        req.Flag,
		ContinentID: req.ContinentID,
	}
	updated, err := uc.reg.update(ctx, id, country)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, updated)
}

// Get - страна по идентификатору
func (uc *CountryUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.CountryResponse, error) {
	country, err := uc.reg.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, country)
}

// List - все страны
func (uc *CountryUseCase) List(ctx context.Context) ([]*dto.CountryResponse, error) {
	countries, err := uc.reg.list(ctx)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(ctx, countries)
}

// ListByContinent - страны континента
func (uc *CountryUseCase) ListByContinent(ctx context.Context, continentID uuid.UUID) ([]*dto.CountryResponse, error) {
	if err := uc.reg.parentExists(ctx, continentID); err != nil {
		return nil, err
	}
	countries, err := uc.reg.listByParent(ctx, continentID)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(ctx, countries)
}

// Search - поиск стран по подстроке имени, с кэшированием
func (uc *CountryUseCase) Search(ctx context.Context, name string) ([]*dto.CountryResponse, error) {
	return cachedSearch(ctx, uc.cacheRepo, uc.logger, searchKey("country", name), uc.cacheTTL,
		func() ([]*dto.CountryResponse, error) {
			countries, err := uc.reg.repo.SearchByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return uc.toResponses(ctx, countries)
		})
}

func (uc *CountryUseCase) checkCodes(ctx context.Context, req dto.CountryRequest, excludeID uuid.UUID) error {
	taken, err := uc.countryRepo.ExistsByCodes(ctx, req.CountryCode, req.PhoneCode, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errors.ErrCountryConflict
	}
	return nil
}

func (uc *CountryUseCase) toResponse(ctx context.Context, country *domain.Country) (*dto.CountryResponse, error) {
	anc, err := uc.resolver.FromContinent(ctx, country.ContinentID)
	if err != nil {
		return nil, err
	}
	return dto.NewCountryResponse(country, anc), nil
}

func (uc *CountryUseCase) toResponses(ctx context.Context, countries []*domain.Country) ([]*dto.CountryResponse, error) {
	responses := make([]*dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		resp, err := uc.toResponse(ctx, country)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
