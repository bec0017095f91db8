package services

import (
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/retail_accounting_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Closing = NewClosingService(
		repos.ClosingRepo,
		repos.TransactionRepo,
		repos.AccountRepo,
		repos.ProductRepo,
		WithActivityLogWriter(repos.ActivityRepo),
	)
	container.Outlet = NewOutletService(repos.OutletRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
