package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// ClosingReader defines read operations over closing records.
type ClosingReader interface {
	// FindClosingByID retrieves a specific closing record by its identifier.
	FindClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error)

	// FindLatestClosing retrieves the most recent closing of the given type
	// for an outlet, or apperrors.ErrNotFound when none exists.
	FindLatestClosing(ctx context.Context, outletID string, closingType domain.ClosingType) (*domain.ClosingRecord, error)

	// ListClosings retrieves a paginated list of closings for an outlet,
	// most recent closing date first.
	ListClosings(ctx context.Context, outletID string, limit int, offset int) ([]domain.ClosingRecord, error)
}

// ClosingTransactionSupport defines the operations the closing engine runs
// inside its per-outlet-per-type serialization scope. LockClosings must be
// called first so that prior-lookup, duplicate check and persist cannot race
// a concurrent close for the same outlet and type.
type ClosingTransactionSupport interface {
	// LockClosings takes a transaction-scoped exclusive lock keyed on
	// (outletID, closingType). Released on commit or rollback.
	LockClosings(ctx context.Context, tx pgx.Tx, outletID string, closingType domain.ClosingType) error

	// FindLatestClosingBeforeInTx retrieves the latest closing of the given
	// type with closingDate strictly before the given date, or
	// apperrors.ErrNotFound.
	FindLatestClosingBeforeInTx(ctx context.Context, tx pgx.Tx, outletID string, closingType domain.ClosingType, before time.Time) (*domain.ClosingRecord, error)

	// FindClosingByDateInTx retrieves the closing with the exact
	// (outlet, type, date) triple, or apperrors.ErrNotFound.
	FindClosingByDateInTx(ctx context.Context, tx pgx.Tx, outletID string, closingType domain.ClosingType, date time.Time) (*domain.ClosingRecord, error)

	// SaveClosingInTx persists a fully-built closing record. The storage
	// layer enforces (outlet, type, date) uniqueness; a violation maps to
	// apperrors.ErrDuplicate.
	SaveClosingInTx(ctx context.Context, tx pgx.Tx, record domain.ClosingRecord) error
}

// ClosingRepositoryFacade combines all closing repository interfaces.
type ClosingRepositoryFacade interface {
	ClosingReader
	ClosingTransactionSupport
	TransactionManager
}
