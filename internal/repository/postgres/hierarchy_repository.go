package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/pkg/errors"
)

// pgUniqueViolation - код ошибки PostgreSQL для нарушения уникального
// индекса. Индексы в схеме - жёсткая гарантия инвариантов уникальности;
// проверка на уровне приложения лишь даёт более точную ошибку раньше.
const pgUniqueViolation = "23505"

// nodeSpec описывает, чем уровень иерархии отличается от остальных на
// уровне SQL: таблица, колонка родителя, область уникальности имени.
type nodeSpec struct {
	table        string
	parentColumn string
	// scopeWide - имя уникально во всём реестре (Continent, Country),
	// иначе в пределах родителя
	scopeWide bool
	// noUniqueness - уровень без ограничения уникальности имени (Location)
	noUniqueness bool
	// columns - колонки уровня помимо общего блока
	columns  []string
	notFound *errors.AppError
	conflict *errors.AppError
}

// nodeRepository - одна реализация хранилища на все шесть уровней.
// T - тип узла, PT - указатель на него, реализующий domain.Node.
type nodeRepository[T any, PT interface {
	domain.Node
	*T
}] struct {
	db     *DB
	logger *zap.Logger
	spec   nodeSpec
	// values отдаёт значения колонок уровня для вставки и обновления
	values func(PT) map[string]interface{}

	insertSQL string
	updateSQL string
}

func newNodeRepository[T any, PT interface {
	domain.Node
	*T
}](db *DB, spec nodeSpec, values func(PT) map[string]interface{}) *nodeRepository[T, PT] {
	placeholders := make([]string, len(spec.columns))
	assignments := make([]string, len(spec.columns))
	for i, col := range spec.columns {
		placeholders[i] = ":" + col
		assignments[i] = col + " = :" + col
	}

	insertSQL := fmt.Sprintf(
		`INSERT INTO %s (id, %s, date_created, created_by, date_modified, modified_by)
		 VALUES (:id, %s, :date_created, :created_by, :date_modified, :modified_by)`,
		spec.table,
		strings.Join(spec.columns, ", "),
		strings.Join(placeholders, ", "),
	)

	updateSQL := fmt.Sprintf(
		`UPDATE %s SET %s, date_modified = :date_modified, modified_by = :modified_by
		 WHERE id = :id`,
		spec.table,
		strings.Join(assignments, ", "),
	)

	return &nodeRepository[T, PT]{
		db:        db,
		logger:    db.logger,
		spec:      spec,
		values:    values,
		insertSQL: insertSQL,
		updateSQL: updateSQL,
	}
}

func (r *nodeRepository[T, PT]) args(node PT) map[string]interface{} {
	meta := node.Meta()
	args := map[string]interface{}{
		"id":            meta.ID,
		"date_created":  meta.DateCreated,
		"created_by":    meta.CreatedBy,
		"date_modified": meta.DateModified,
		"modified_by":   meta.ModifiedBy,
	}
	for col, val := range r.values(node) {
		args[col] = val
	}
	return args
}

// Create выполняет проверку уникальности и вставку в одной транзакции.
// Две конкурентные вставки одного имени в одной области сериализуются
// уникальным индексом: победит ровно одна, вторая получит conflict.
func (r *nodeRepository[T, PT]) Create(ctx context.Context, node PT) error {
	meta := node.Meta()
	meta.ID = uuid.New()
	now := time.Now().UTC()
	meta.DateCreated = now
	meta.DateModified = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return r.wrapError("begin tx", err)
	}
	defer tx.Rollback()

	if err := r.probeUniqueness(ctx, tx, node); err != nil {
		return err
	}

	if _, err := tx.NamedExecContext(ctx, r.insertSQL, r.args(node)); err != nil {
		return r.wrapError("insert", err)
	}

	if err := tx.Commit(); err != nil {
		return r.wrapError("commit", err)
	}
	return nil
}

// Update перезаписывает имя и родителя вместе - частично изменённый узел
// снаружи не наблюдаем.
func (r *nodeRepository[T, PT]) Update(ctx context.Context, node PT) error {
	node.Meta().DateModified = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return r.wrapError("begin tx", err)
	}
	defer tx.Rollback()

	if err := r.probeUniqueness(ctx, tx, node); err != nil {
		return err
	}

	res, err := tx.NamedExecContext(ctx, r.updateSQL, r.args(node))
	if err != nil {
		return r.wrapError("update", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return r.spec.notFound
	}

	if err := tx.Commit(); err != nil {
		return r.wrapError("commit", err)
	}
	return nil
}

// probeUniqueness проверяет имя в области уникальности уровня внутри
// транзакции записи. Сам узел исключается, иначе update без смены имени
// конфликтовал бы сам с собой.
func (r *nodeRepository[T, PT]) probeUniqueness(ctx context.Context, tx *sqlx.Tx, node PT) error {
	if r.spec.noUniqueness {
		return nil
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE name = $1 AND id <> $2)`, r.spec.table)
	queryArgs := []interface{}{node.NodeName(), node.Meta().ID}
	if !r.spec.scopeWide {
		query = fmt.Sprintf(
			`SELECT EXISTS (SELECT 1 FROM %s WHERE name = $1 AND %s = $2 AND id <> $3)`,
			r.spec.table, r.spec.parentColumn,
		)
		queryArgs = []interface{}{node.NodeName(), node.ParentRef(), node.Meta().ID}
	}

	var exists bool
	if err := tx.GetContext(ctx, &exists, query, queryArgs...); err != nil {
		return r.wrapError("probe uniqueness", err)
	}
	if exists {
		return r.spec.conflict
	}
	return nil
}

func (r *nodeRepository[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (PT, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, r.spec.table)

	var row T
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, r.spec.notFound
		}
		return nil, r.wrapError("get by id", err)
	}
	return PT(&row), nil
}

func (r *nodeRepository[T, PT]) List(ctx context.Context) ([]PT, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY date_created`, r.spec.table)
	return r.selectNodes(ctx, query)
}

func (r *nodeRepository[T, PT]) SearchByName(ctx context.Context, name string) ([]PT, error) {
	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE name ILIKE '%%' || $1 || '%%' ORDER BY name`,
		r.spec.table,
	)
	return r.selectNodes(ctx, query, name)
}

func (r *nodeRepository[T, PT]) ListByParent(ctx context.Context, parentID uuid.UUID) ([]PT, error) {
	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE %s = $1 ORDER BY date_created`,
		r.spec.table, r.spec.parentColumn,
	)
	return r.selectNodes(ctx, query, parentID)
}

func (r *nodeRepository[T, PT]) selectNodes(ctx context.Context, query string, args ...interface{}) ([]PT, error) {
	var rows []T
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, r.wrapError("select", err)
	}

	nodes := make([]PT, len(rows))
	for i := range rows {
		nodes[i] = PT(&rows[i])
	}
	return nodes, nil
}

func (r *nodeRepository[T, PT]) wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return r.spec.conflict
	}

	r.logger.Error("node repository operation failed",
		zap.String("table", r.spec.table),
		zap.String("op", op),
		zap.Error(err),
	)
	return errors.ErrDatabaseError
}
