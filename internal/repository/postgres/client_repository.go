package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/pkg/errors"
)

type clientRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewClientRepository создает новый экземпляр client repository
func NewClientRepository(db *DB) repository.ClientRepository {
	return &clientRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	client.ID = uuid.New()
	now := time.Now().UTC()
	client.DateCreated = now
	client.DateModified = now

	query := `INSERT INTO clients
		 (id, name, tenant_id, date_created, created_by, date_modified, modified_by)
		 VALUES (:id, :name, :tenant_id, :date_created, :created_by, :date_modified, :modified_by)`

	if _, err := r.db.NamedExecContext(ctx, query, client); err != nil {
		return r.wrapError("insert client", err)
	}
	return nil
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	client.DateModified = time.Now().UTC()

	query := `UPDATE clients
		 SET name = :name, date_modified = :date_modified, modified_by = :modified_by
		 WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, client)
	if err != nil {
		return r.wrapError("update client", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return errors.ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client, `SELECT * FROM clients WHERE id = $1`, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrClientNotFound
		}
		return nil, r.wrapError("get client by id", err)
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	var clients []*domain.Client
	err := r.db.SelectContext(ctx, &clients, `SELECT * FROM clients ORDER BY date_created`)
	if err != nil {
		return nil, r.wrapError("list clients", err)
	}
	return clients, nil
}

func (r *clientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id)
	if err != nil {
		return false, r.wrapError("client exists", err)
	}
	return exists, nil
}

func (r *clientRepository) wrapError(op string, err error) error {
	r.logger.Error("client repository operation failed", zap.String("op", op), zap.Error(err))
	return errors.ErrDatabaseError
}
