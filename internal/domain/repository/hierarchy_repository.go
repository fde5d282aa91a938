package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/geo-registry/internal/domain"
)

// NodeRepository определяет общую форму хранилища для всех шести уровней
// иерархии. Конкретные реализации добавляют только то, чем уровни
// действительно различаются (например, проверку кодов у стран).
type NodeRepository[T domain.Node] interface {
	// Create сохраняет узел; id и таймстемпы выставляет хранилище.
	// Проверка уникальности и запись выполняются в одной транзакции.
	Create(ctx context.Context, node T) error

	// Update перезаписывает имя и родителя узла атомарно.
	Update(ctx context.Context, node T) error

	// GetByID возвращает узел по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (T, error)

	// List возвращает все узлы уровня
	List(ctx context.Context) ([]T, error)

	// SearchByName возвращает узлы, имя которых содержит подстроку
	// (без учёта регистра)
	SearchByName(ctx context.Context, name string) ([]T, error)

	// ListByParent возвращает узлы с данным непосредственным родителем
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]T, error)
}

// CountryRepository добавляет проверку общереестровой уникальности кода
// страны и телефонного кода.
type CountryRepository interface {
	NodeRepository[*domain.Country]

	// ExistsByCodes проверяет занятость countryCode или phoneCode другой
	// страной; excludeID исключает саму обновляемую запись (uuid.Nil при
	// создании)
	ExistsByCodes(ctx context.Context, countryCode, phoneCode string, excludeID uuid.UUID) (bool, error)
}

// LocationRepository добавляет поиск по адресу, у листового уровня нет
// ограничения уникальности имени.
type LocationRepository interface {
	NodeRepository[*domain.Location]

	// SearchByAddress возвращает локации, у которых houseAddress или
	// streetName содержит подстроку (без учёта регистра)
	SearchByAddress(ctx context.Context, term string) ([]*domain.Location, error)
}
