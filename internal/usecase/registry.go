package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
)

// Атрибуция записей реестра
const (
	actorService   = "SYSTEM"
	actorBootstrap = "System"
)

// registry - общее ядро use case'ов шести уровней иерархии. Порядок
// проверок при записи одинаков на всех уровнях: существование родителя,
// затем уникальность в рамках области видимости, затем (для обновления)
// существование самого узла. Последние две проверки выполняет хранилище
// внутри транзакции записи.
type registry[T domain.Node] struct {
	repo         repository.NodeRepository[T]
	parentExists func(ctx context.Context, parentID uuid.UUID) error
	level        string
	logger       *zap.Logger
}

func newRegistry[T domain.Node](
	repo repository.NodeRepository[T],
	parentExists func(ctx context.Context, parentID uuid.UUID) error,
	level string,
	logger *zap.Logger,
) registry[T] {
	return registry[T]{
		repo:         repo,
		parentExists: parentExists,
		level:        level,
		logger:       logger,
	}
}

// create - создание узла после проверки существования родителя
func (r *registry[T]) create(ctx context.Context, node T) error {
	if err := r.parentExists(ctx, node.ParentRef()); err != nil {
		return err
	}

	node.Meta().CreatedBy = actorService
	node.Meta().ModifiedBy = actorService

	if err := r.repo.Create(ctx, node); err != nil {
		return err
	}

	r.logger.Info("Registry node created",
		zap.String("level", r.level),
		zap.String("id", node.Meta().ID.String()),
		zap.String("name", node.NodeName()))
	return nil
}

// update - перезапись имени и родителя узла; свежее состояние
// перечитывается после фиксации
func (r *registry[T]) update(ctx context.Context, id uuid.UUID, node T) (T, error) {
	var zero T

	if err := r.parentExists(ctx, node.ParentRef()); err != nil {
		return zero, err
	}

	node.Meta().ID = id
	node.Meta().ModifiedBy = actorService

	if err := r.repo.Update(ctx, node); err != nil {
		return zero, err
	}

	r.logger.Info("Registry node updated",
		zap.String("level", r.level),
		zap.String("id", id.String()))
	return r.repo.GetByID(ctx, id)
}

func (r *registry[T]) get(ctx context.Context, id uuid.UUID) (T, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *registry[T]) list(ctx context.Context) ([]T, error) {
	return r.repo.List(ctx)
}

func (r *registry[T]) listByParent(ctx context.Context, parentID uuid.UUID) ([]T, error) {
	return r.repo.ListByParent(ctx, parentID)
}

// cachedSearch - обёртка поиска с кэшированием готовых ответов в Redis.
// Недоступность кэша не фатальна: поиск деградирует до прямого запроса
// к базе.
func cachedSearch[R any](
	ctx context.Context,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	key string,
	ttl time.Duration,
	load func() ([]R, error),
) ([]R, error) {
	if cacheRepo != nil {
		data, err := cacheRepo.Get(ctx, key)
		if err != nil {
			logger.Warn("Search cache read failed", zap.String("key", key), zap.Error(err))
		} else if data != nil {
			var cached []R
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			logger.Warn("Corrupted search cache entry", zap.String("key", key))
		}
	}

	results, err := load()
	if err != nil {
		return nil, err
	}

	if cacheRepo != nil {
		if data, err := json.Marshal(results); err == nil {
			if err := cacheRepo.Set(ctx, key, data, ttl); err != nil {
				logger.Warn("Search cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return results, nil
}

func searchKey(level, term string) string {
	return fmt.Sprintf("search:%s:%s", level, term)
}
