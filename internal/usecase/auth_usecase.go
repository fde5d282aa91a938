package usecase

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/pkg/apikey"
	"github.com/geo-registry/internal/pkg/errors"
)

// Формат email проверяется до любого обращения к базе
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// AuthUseCase - проверка API-ключей и административных прав.
// Ключ никогда не хранится в открытом виде: входящее значение хэшируется
// и сравнивается с хэшем в базе.
type AuthUseCase struct {
	tenantRepo  repository.TenantRepository
	adminEmails map[string]struct{}
	logger      *zap.Logger
}

// NewAuthUseCase - создание нового AuthUseCase; adminEmails - список
// email-адресов с правом администрирования тенантов
func NewAuthUseCase(
	tenantRepo repository.TenantRepository,
	adminEmails []string,
	logger *zap.Logger,
) *AuthUseCase {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}
	return &AuthUseCase{
		tenantRepo:  tenantRepo,
		adminEmails: admins,
		logger:      logger,
	}
}

// Verify - проверка API-ключа; возвращает владеющего тенанта
func (uc *AuthUseCase) Verify(ctx context.Context, key string) (*domain.Tenant, error) {
	if key == "" {
		return nil, errors.ErrInvalidAPIKey
	}

	tenant, err := uc.tenantRepo.GetByAPIKeyHash(ctx, apikey.Hash(key))
	if err != nil {
		uc.logger.Error("Failed to look up api key", zap.Error(err))
		return nil, err
	}
	if tenant == nil {
		return nil, errors.ErrInvalidAPIKey
	}
	return tenant, nil
}

// VerifyAdmin - проверка API-ключа и административных прав владельца.
// Недействительный ключ и валидный ключ без прав различаются сообщением.
func (uc *AuthUseCase) VerifyAdmin(ctx context.Context, key string) (*domain.Tenant, error) {
	tenant, err := uc.Verify(ctx, key)
	if err != nil {
		return nil, err
	}
	if !uc.IsAdmin(tenant.Email) {
		uc.logger.Warn("Admin operation rejected", zap.String("email", tenant.Email))
		return nil, errors.ErrAdminRequired
	}
	return tenant, nil
}

// IsAdmin - проверка принадлежности email к списку администраторов
func (uc *AuthUseCase) IsAdmin(email string) bool {
	_, ok := uc.adminEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// ValidateEmail - синтаксическая проверка email
func (uc *AuthUseCase) ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.ErrInvalidEmail
	}
	return nil
}
