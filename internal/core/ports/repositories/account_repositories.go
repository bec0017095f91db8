package repositories

import (
	"context"
	"time"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsBySubType retrieves the outlet's accounts of the given
	// sub-type, optionally restricted to active accounts.
	FindAccountsBySubType(ctx context.Context, outletID string, subType domain.AccountSubType, activeOnly bool) ([]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for an outlet.
	ListAccounts(ctx context.Context, outletID string, limit int, offset int) ([]domain.Account, error)
}

// LedgerReader defines read operations over ledger entries. The closing
// engine never writes entries; posting belongs to the voucher engine.
type LedgerReader interface {
	// FindLedgerEntries retrieves entries against the given accounts dated on
	// or before the cutoff. An empty accountIDs slice yields no entries.
	FindLedgerEntries(ctx context.Context, outletID string, accountIDs []string, onOrBefore time.Time) ([]domain.LedgerEntry, error)
}

// AccountRepositoryFacade combines account and ledger read interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	LedgerReader
}
