package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	portsrepo "github.com/plandesk/biz_planning_app/internal/core/ports/repositories"
	"github.com/plandesk/biz_planning_app/internal/models"
	"github.com/plandesk/biz_planning_app/internal/utils/mapping"
)

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{db: db}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, contact_person, email, notes, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.ContactPerson,
		&m.Email,
		&m.Notes,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        INSERT INTO clients (client_id, name, contact_person, email, notes, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.ContactPerson,
		m.Email,
		m.Notes,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE client_id = $1 AND is_active = TRUE;
	`
	m, err := scanClient(r.db.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + clientColumns + `
        FROM clients
        WHERE is_active = TRUE
        ORDER BY name ASC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients := []models.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		modelClients = append(modelClients, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	return mapping.ToDomainClientSlice(modelClients), nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        UPDATE clients
        SET name = $1, contact_person = $2, email = $3, notes = $4, last_updated_at = $5, last_updated_by = $6
        WHERE client_id = $7 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.ContactPerson,
		m.Email,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update client query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found or inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error {
	query := `
        UPDATE clients
        SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
        WHERE client_id = $3 AND is_active = TRUE;
    `
	cmdTag, err := r.db.Exec(ctx, query, now, userID, clientID)
	if err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found or inactive: %w", apperrors.ErrNotFound)
	}
	return nil
}
