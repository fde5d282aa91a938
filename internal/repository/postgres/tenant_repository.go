package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/pkg/errors"
)

type tenantRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewTenantRepository создает новый экземпляр tenant repository
func NewTenantRepository(db *DB) repository.TenantRepository {
	return &tenantRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	tenant.ID = uuid.New()
	now := time.Now().UTC()
	tenant.DateCreated = now
	tenant.DateModified = now

	query := `INSERT INTO tenants
		 (id, name, email, api_key_hash, encrypted_api_key, is_active,
		  date_created, created_by, date_modified, modified_by)
		 VALUES (:id, :name, :email, :api_key_hash, :encrypted_api_key, :is_active,
		  :date_created, :created_by, :date_modified, :modified_by)`

	if _, err := r.db.NamedExecContext(ctx, query, tenant); err != nil {
		return r.wrapError("insert tenant", err)
	}
	return nil
}

func (r *tenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	tenant.DateModified = time.Now().UTC()

	query := `UPDATE tenants
		 SET name = :name, email = :email, is_active = :is_active,
		     date_modified = :date_modified, modified_by = :modified_by
		 WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, tenant)
	if err != nil {
		return r.wrapError("update tenant", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return errors.ErrTenantNotFound
	}
	return nil
}

func (r *tenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.GetContext(ctx, &tenant, `SELECT * FROM tenants WHERE id = $1`, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrTenantNotFound
		}
		return nil, r.wrapError("get tenant by id", err)
	}
	return &tenant, nil
}

// GetByAPIKeyHash ищет тенанта по хешу ключа; (nil, nil) если совпадения
// нет - решение об Unauthorized принимает вызывающий слой.
func (r *tenantRepository) GetByAPIKeyHash(ctx context.Context, hash string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.GetContext(ctx, &tenant, `SELECT * FROM tenants WHERE api_key_hash = $1`, hash)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.wrapError("get tenant by api key hash", err)
	}
	return &tenant, nil
}

func (r *tenantRepository) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.GetContext(ctx, &tenant, `SELECT * FROM tenants WHERE email = $1`, email)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.wrapError("get tenant by email", err)
	}
	return &tenant, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]*domain.Tenant, error) {
	var tenants []*domain.Tenant
	err := r.db.SelectContext(ctx, &tenants, `SELECT * FROM tenants ORDER BY date_created`)
	if err != nil {
		return nil, r.wrapError("list tenants", err)
	}
	return tenants, nil
}

func (r *tenantRepository) wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errors.ErrTenantConflict
	}

	r.logger.Error("tenant repository operation failed", zap.String("op", op), zap.Error(err))
	return errors.ErrDatabaseError
}
