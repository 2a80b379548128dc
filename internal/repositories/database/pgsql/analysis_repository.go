package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	portsrepo "github.com/plandesk/biz_planning_app/internal/core/ports/repositories"
	"github.com/plandesk/biz_planning_app/internal/models"
	"github.com/plandesk/biz_planning_app/internal/utils/mapping"
)

type PgxAnalysisRepository struct {
	db *pgxpool.Pool
}

func newPgxAnalysisRepository(db *pgxpool.Pool) portsrepo.AnalysisRepositoryFacade {
	return &PgxAnalysisRepository{db: db}
}

// Ensure PgxAnalysisRepository implements portsrepo.AnalysisRepositoryFacade
var _ portsrepo.AnalysisRepositoryFacade = (*PgxAnalysisRepository)(nil)

const analysisColumns = `analysis_id, client_id, name, base_year, plan, created_at, created_by, last_updated_at, last_updated_by`

func scanAnalysis(row pgx.Row) (models.Analysis, error) {
	var m models.Analysis
	err := row.Scan(
		&m.AnalysisID,
		&m.ClientID,
		&m.Name,
		&m.BaseYear,
		&m.PlanJSON,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAnalysisRepository) SaveAnalysis(ctx context.Context, analysis domain.Analysis) error {
	m, err := mapping.ToModelAnalysis(analysis)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO analyses (analysis_id, client_id, name, base_year, plan, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err = r.db.Exec(ctx, query,
		m.AnalysisID,
		m.ClientID,
		m.Name,
		m.BaseYear,
		m.PlanJSON,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

func (r *PgxAnalysisRepository) FindAnalysisByID(ctx context.Context, analysisID string) (*domain.Analysis, error) {
	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		WHERE analysis_id = $1;
	`
	m, err := scanAnalysis(r.db.QueryRow(ctx, query, analysisID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find analysis by ID %s: %w", analysisID, err)
	}

	analysis, err := mapping.ToDomainAnalysis(m)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *PgxAnalysisRepository) ListAnalysesByClient(ctx context.Context, clientID string) ([]domain.Analysis, error) {
	query := `
        SELECT ` + analysisColumns + `
        FROM analyses
        WHERE client_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	modelAnalyses := []models.Analysis{}
	for rows.Next() {
		m, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		modelAnalyses = append(modelAnalyses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating analysis rows: %w", rows.Err())
	}

	return mapping.ToDomainAnalysisSlice(modelAnalyses)
}

func (r *PgxAnalysisRepository) UpdateAnalysis(ctx context.Context, analysis domain.Analysis) error {
	m, err := mapping.ToModelAnalysis(analysis)
	if err != nil {
		return err
	}
	query := `
        UPDATE analyses
        SET name = $1, base_year = $2, plan = $3, last_updated_at = $4, last_updated_by = $5
        WHERE analysis_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.BaseYear,
		m.PlanJSON,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AnalysisID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update analysis query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAnalysisRepository) DeleteAnalysis(ctx context.Context, analysisID string) error {
	query := `DELETE FROM analyses WHERE analysis_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, analysisID)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
