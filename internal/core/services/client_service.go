package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	portsrepo "github.com/plandesk/biz_planning_app/internal/core/ports/repositories"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
	"github.com/plandesk/biz_planning_app/internal/dto"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now()

	client := domain.Client{
		ClientID:      uuid.NewString(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Notes:         req.Notes,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client",
			slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created",
		slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID",
				slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client",
			slog.String("client_id", clientID))
		return nil, err
	}

	return client, nil
}

func (s *clientService) DeactivateClient(ctx context.Context, clientID string, userID string) error {
	if err := s.clientRepo.DeactivateClient(ctx, clientID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate client",
				slog.String("client_id", clientID))
		}
		return err
	}

	s.LogInfo(ctx, "Client deactivated",
		slog.String("client_id", clientID))
	return nil
}
