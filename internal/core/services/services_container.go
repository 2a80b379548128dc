package services

import (
	portsrepo "github.com/plandesk/biz_planning_app/internal/core/ports/repositories"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Analysis = NewAnalysisService(repos.AnalysisRepo, repos.ClientRepo)
	container.Planning = NewPlanningService(repos.AnalysisRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
