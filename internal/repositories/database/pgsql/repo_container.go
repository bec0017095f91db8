package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql-backed repository over a shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ClosingRepo:     newPgxClosingRepository(pool),
		TransactionRepo: newPgxTransactionStore(pool),
		AccountRepo:     newPgxAccountRepository(pool),
		ProductRepo:     newPgxProductRepository(pool),
		ActivityRepo:    newPgxActivityLogRepository(pool),
		OutletRepo:      newPgxOutletRepository(pool),
		UserRepo:        newPgxUserRepository(pool),
	}
}
