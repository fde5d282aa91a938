package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/domain"
	"github.com/geo-registry/internal/domain/repository"
	"github.com/geo-registry/internal/usecase/dto"
)

// ClientUseCase - клиенты тенантов. Владелец нового клиента определяется
// API-ключом запроса, а не телом.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	tenantRepo repository.TenantRepository
	logger     *zap.Logger
}

// NewClientUseCase - создание нового ClientUseCase
func NewClientUseCase(
	clientRepo repository.ClientRepository,
	tenantRepo repository.TenantRepository,
	logger *zap.Logger,
) *ClientUseCase {
	return &ClientUseCase{
		clientRepo: clientRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// Create - создание клиента под тенантом, предъявившим ключ
func (uc *ClientUseCase) Create(ctx context.Context, tenant *domain.Tenant, req dto.ClientRequest) (*dto.ClientResponse, error) {
	client := &domain.Client{
		Name:     req.Name,
		TenantID: tenant.ID,
	}
	client.CreatedBy = actorService
	client.ModifiedBy = actorService

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	uc.logger.Info("Client created",
		zap.String("id", client.ID.String()),
		zap.String("tenant", tenant.Name))
	return dto.NewClientResponse(client, tenant.Name), nil
}

// Update - обновление имени клиента; принадлежность тенанту не меняется
func (uc *ClientUseCase) Update(ctx context.Context, id uuid.UUID, req dto.ClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.ModifiedBy = actorService

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, client)
}

// Get - клиент по идентификатору
func (uc *ClientUseCase) Get(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, client)
}

// List - все клиенты с именами владеющих тенантов
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Имена тенантов добираются по одному; список клиентов короткий
	responses := make([]*dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		resp, err := uc.toResponse(ctx, client)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (uc *ClientUseCase) toResponse(ctx context.Context, client *domain.Client) (*dto.ClientResponse, error) {
	tenant, err := uc.tenantRepo.GetByID(ctx, client.TenantID)
	if err != nil {
		return nil, err
	}
	return dto.NewClientResponse(client, tenant.Name), nil
}
