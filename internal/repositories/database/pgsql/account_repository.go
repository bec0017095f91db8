package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	"github.com/retailbooks/retail_accounting_app/internal/models"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account and ledger data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		OutletID:    m.OutletID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		SubType:     domain.AccountSubType(m.SubType),
		Description: m.Description,
		IsActive:    m.IsActive,
		Balance:     m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const accountColumns = `account_id, outlet_id, name, account_type, sub_type, description, is_active, balance,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID, &m.OutletID, &m.Name, &m.AccountType, &m.SubType, &m.Description, &m.IsActive, &m.Balance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	account := toDomainAccount(m)
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountsBySubType(ctx context.Context, outletID string, subType domain.AccountSubType, activeOnly bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE outlet_id = $1 AND sub_type = $2`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, outletID, string(subType))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s accounts: %w", subType, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}

	return accounts, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, outletID string, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE outlet_id = $1 ORDER BY name LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, outletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}

	return accounts, nil
}

// FindLedgerEntries retrieves entries for the given accounts dated on or
// before the cutoff. The cutoff is inclusive so opening-balance entries that
// share a date with the first operational transaction are counted.
func (r *PgxAccountRepository) FindLedgerEntries(ctx context.Context, outletID string, accountIDs []string, onOrBefore time.Time) ([]domain.LedgerEntry, error) {
	if len(accountIDs) == 0 {
		return []domain.LedgerEntry{}, nil
	}

	query := `
		SELECT entry_id, outlet_id, account_id, entry_date, debit, credit, narration, reference_type
		FROM ledger_entries
		WHERE outlet_id = $1 AND account_id = ANY($2) AND entry_date <= $3
		ORDER BY entry_date;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, accountIDs, onOrBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(&m.EntryID, &m.OutletID, &m.AccountID, &m.EntryDate, &m.Debit, &m.Credit, &m.Narration, &m.ReferenceType); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, domain.LedgerEntry{
			EntryID:       m.EntryID,
			OutletID:      m.OutletID,
			AccountID:     m.AccountID,
			EntryDate:     m.EntryDate,
			Debit:         m.Debit,
			Credit:        m.Credit,
			Narration:     m.Narration,
			ReferenceType: domain.LedgerReferenceType(m.ReferenceType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating ledger entry rows: %w", err)
	}

	return entries, nil
}
