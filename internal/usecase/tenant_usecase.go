package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/pkg/apikey"
	"github.com/geo-registry/internal/pkg/errors"
	"github.com/geo-registry/internal/usecase/dto"
)

// TenantUseCase - жизненный цикл тенантов и их API-ключей. Секрет
// генерируется сервером и хранится в двух формах: хеш для поиска и
// шифртекст для выдачи администратору.
type TenantUseCase struct {
	tenantRepo repository.TenantRepository
	cipher     *apikey.Cipher
	auth       *AuthUseCase
	logger     *zap.Logger
}

// NewTenantUseCase - создание нового TenantUseCase
func NewTenantUseCase(
	tenantRepo repository.TenantRepository,
	cipher *apikey.Cipher,
	auth *AuthUseCase,
	logger *zap.Logger,
) *TenantUseCase {
	return &TenantUseCase{
		tenantRepo: tenantRepo,
		cipher:     cipher,
		auth:       auth,
		logger:     logger,
	}
}

// Create - создание тенанта со свежим API-ключом. Открытый ключ
// присутствует в ответе; в базу попадают только хеш и шифртекст.
func (uc *TenantUseCase) Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if err := uc.auth.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	key := apikey.Generate()
	encrypted, err := uc.cipher.Encrypt(key)
	if err != nil {
		uc.logger.Error("Failed to encrypt api key", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	tenant := &domain.Tenant{
		Name:            req.Name,
		Email:           req.Email,
		APIKeyHash:      apikey.Hash(key),
		EncryptedAPIKey: encrypted,
		IsActive:        true,
	}
	tenant.CreatedBy = actorService
	tenant.ModifiedBy = actorService

	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	uc.logger.Info("Tenant created",
		zap.String("id", tenant.ID.String()),
		zap.String("email", tenant.Email))
	return dto.NewTenantResponse(tenant, key), nil
}

// Update - обновление имени, email и активности тенанта; ключ не меняется
func (uc *TenantUseCase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if err := uc.auth.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	tenant, err := uc.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant.Name = req.Name
	tenant.Email = req.Email
	tenant.IsActive = req.IsActive
	tenant.ModifiedBy = actorService

	if err := uc.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return uc.toResponse(tenant)
}

// Get - тенант по идентификатору с расшифрованным ключом
func (uc *TenantUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.TenantResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(tenant)
}

// List - все тенанты с расшифрованными ключами
func (uc *TenantUseCase) List(ctx context.Context) ([]*dto.TenantResponse, error) {
	tenants, err := uc.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TenantResponse, 0, len(tenants))
	for _, tenant := range tenants {
		resp, err := uc.toResponse(tenant)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Bootstrap - идемпотентное создание административных тенантов при
// старте сервиса. Существующие записи не трогаются, даже отключённые.
func (uc *TenantUseCase) Bootstrap(ctx context.Context, names, emails []string) error {
	for i, email := range emails {
		existing, err := uc.tenantRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		key := apikey.Generate()
		encrypted, err := uc.cipher.Encrypt(key)
		if err != nil {
			return err
		}

		tenant := &domain.Tenant{
			Name:            names[i],
			Email:           email,
			APIKeyHash:      apikey.Hash(key),
			EncryptedAPIKey: encrypted,
			IsActive:        true,
		}
		tenant.CreatedBy = actorBootstrap
		tenant.ModifiedBy = actorBootstrap

		if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
			return err
		}
		uc.logger.Info("Admin tenant bootstrapped", zap.String("email", email))
	}
	return nil
}

func (uc *TenantUseCase) toResponse(tenant *domain.Tenant) (*dto.TenantResponse, error) {
	key, err := uc.cipher.Decrypt(tenant.EncryptedAPIKey)
	if err != nil {
		uc.logger.Error("Failed to decrypt api key",
			zap.String("id", tenant.ID.String()), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	return dto.NewTenantResponse(tenant, key), nil
}
