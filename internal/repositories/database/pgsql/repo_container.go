package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/plandesk/biz_planning_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:   newPgxClientRepository(dbPool),
		AnalysisRepo: newPgxAnalysisRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
