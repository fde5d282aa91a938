package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/geo-registry/internal/domain"
)

// TenantRepository определяет методы хранилища тенантов. Поиск по секрету
// всегда идёт через хеш - полный перебор не используется.
type TenantRepository interface {
	// Create сохраняет тенанта; уникальность имени и email гарантирует
	// хранилище
	Create(ctx context.Context, tenant *domain.Tenant) error

	// Update перезаписывает имя, email и флаг активности
	Update(ctx context.Context, tenant *domain.Tenant) error

	// GetByID возвращает тенанта по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)

	// GetByAPIKeyHash возвращает тенанта по хешу ключа
	GetByAPIKeyHash(ctx context.Context, hash string) (*domain.Tenant, error)

	// GetByEmail возвращает тенанта по email; (nil, nil) если не найден -
	// этим пользуется идемпотентный бутстрап админов
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)

	// List возвращает всех тенантов
	List(ctx context.Context) ([]*domain.Tenant, error)
}

// ClientRepository определяет методы хранилища клиентов.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)

	// Exists проверяет существование клиента перед созданием континента
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
