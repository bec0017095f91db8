package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClosingRepo     ClosingRepositoryFacade
	TransactionRepo TransactionStoreFacade
	AccountRepo     AccountRepositoryFacade
	ProductRepo     ProductReader
	ActivityRepo    ActivityLogWriter
	OutletRepo      OutletReader
	UserRepo        UserReader
}
