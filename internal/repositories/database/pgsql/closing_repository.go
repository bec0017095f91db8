package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	"github.com/retailbooks/retail_accounting_app/internal/models"
)

type PgxClosingRepository struct {
	BaseRepository
}

// newPgxClosingRepository creates a new repository for closing records.
func newPgxClosingRepository(pool *pgxpool.Pool) portsrepo.ClosingRepositoryFacade {
	return &PgxClosingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClosingRepository implements portsrepo.ClosingRepositoryFacade
var _ portsrepo.ClosingRepositoryFacade = (*PgxClosingRepository)(nil)

const closingColumns = `closing_id, outlet_id, closing_type, closing_date, period_start, period_end, status,
	opening_cash, opening_bank, closing_cash, closing_bank,
	cash_sales, bank_sales, cash_payments, bank_payments,
	total_revenue, total_discount, total_tax, sales_count,
	total_opening_balance, total_closing_balance,
	opening_stock_qty, opening_stock_value, closing_stock_qty, closing_stock_value,
	net_profit, notes, closed_by, closed_at,
	created_at, created_by, last_updated_at, last_updated_by`

// Helper to convert domain.ClosingRecord to models.Closing for DB storage
func toModelClosing(d domain.ClosingRecord) models.Closing {
	return models.Closing{
		ClosingID:           d.ClosingID,
		OutletID:            d.OutletID,
		ClosingType:         string(d.ClosingType),
		ClosingDate:         d.ClosingDate,
		PeriodStart:         d.PeriodStart,
		PeriodEnd:           d.PeriodEnd,
		Status:              string(d.Status),
		OpeningCash:         d.OpeningCash,
		OpeningBank:         d.OpeningBank,
		ClosingCash:         d.ClosingCash,
		ClosingBank:         d.ClosingBank,
		CashSales:           d.CashSales,
		BankSales:           d.BankSales,
		CashPayments:        d.CashPayments,
		BankPayments:        d.BankPayments,
		TotalRevenue:        d.TotalRevenue,
		TotalDiscount:       d.TotalDiscount,
		TotalTax:            d.TotalTax,
		SalesCount:          d.SalesCount,
		TotalOpeningBalance: d.TotalOpeningBalance,
		TotalClosingBalance: d.TotalClosingBalance,
		OpeningStockQty:     d.OpeningStockQty,
		OpeningStockValue:   d.OpeningStockValue,
		ClosingStockQty:     d.ClosingStockQty,
		ClosingStockValue:   d.ClosingStockValue,
		NetProfit:           d.NetProfit,
		Notes:               d.Notes,
		ClosedBy:            d.ClosedBy,
		ClosedAt:            d.ClosedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Closing from DB to domain.ClosingRecord
func toDomainClosing(m models.Closing) domain.ClosingRecord {
	return domain.ClosingRecord{
		ClosingID:           m.ClosingID,
		OutletID:            m.OutletID,
		ClosingType:         domain.ClosingType(m.ClosingType),
		ClosingDate:         m.ClosingDate,
		PeriodStart:         m.PeriodStart,
		PeriodEnd:           m.PeriodEnd,
		Status:              domain.ClosingStatus(m.Status),
		OpeningCash:         m.OpeningCash,
		OpeningBank:         m.OpeningBank,
		ClosingCash:         m.ClosingCash,
		ClosingBank:         m.ClosingBank,
		CashSales:           m.CashSales,
		BankSales:           m.BankSales,
		CashPayments:        m.CashPayments,
		BankPayments:        m.BankPayments,
		TotalRevenue:        m.TotalRevenue,
		TotalDiscount:       m.TotalDiscount,
		TotalTax:            m.TotalTax,
		SalesCount:          m.SalesCount,
		TotalOpeningBalance: m.TotalOpeningBalance,
		TotalClosingBalance: m.TotalClosingBalance,
		OpeningStockQty:     m.OpeningStockQty,
		OpeningStockValue:   m.OpeningStockValue,
		ClosingStockQty:     m.ClosingStockQty,
		ClosingStockValue:   m.ClosingStockValue,
		NetProfit:           m.NetProfit,
		Notes:               m.Notes,
		ClosedBy:            m.ClosedBy,
		ClosedAt:            m.ClosedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClosing(row rowScanner) (models.Closing, error) {
	var m models.Closing
	err := row.Scan(
		&m.ClosingID, &m.OutletID, &m.ClosingType, &m.ClosingDate, &m.PeriodStart, &m.PeriodEnd, &m.Status,
		&m.OpeningCash, &m.OpeningBank, &m.ClosingCash, &m.ClosingBank,
		&m.CashSales, &m.BankSales, &m.CashPayments, &m.BankPayments,
		&m.TotalRevenue, &m.TotalDiscount, &m.TotalTax, &m.SalesCount,
		&m.TotalOpeningBalance, &m.TotalClosingBalance,
		&m.OpeningStockQty, &m.OpeningStockValue, &m.ClosingStockQty, &m.ClosingStockValue,
		&m.NetProfit, &m.Notes, &m.ClosedBy, &m.ClosedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// LockClosings serializes closing activity per (outlet, closingType) with a
// transaction-scoped advisory lock, so prior-lookup, duplicate check and
// insert cannot interleave with a concurrent close for the same scope.
func (r *PgxClosingRepository) LockClosings(ctx context.Context, tx pgx.Tx, outletID string, closingType domain.ClosingType) error {
	key := outletID + ":" + string(closingType)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("failed to acquire closing lock for %s: %w", key, err)
	}
	return nil
}

func (r *PgxClosingRepository) FindLatestClosingBeforeInTx(ctx context.Context, tx pgx.Tx, outletID string, closingType domain.ClosingType, before time.Time) (*domain.ClosingRecord, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE outlet_id = $1 AND closing_type = $2 AND closing_date < $3
		ORDER BY closing_date DESC
		LIMIT 1;
	`
	m, err := scanClosing(tx.QueryRow(ctx, query, outletID, string(closingType), before))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest closing before %s: %w", before.Format("2006-01-02"), err)
	}

	record := toDomainClosing(m)
	return &record, nil
}

func (r *PgxClosingRepository) FindClosingByDateInTx(ctx context.Context, tx pgx.Tx, outletID string, closingType domain.ClosingType, date time.Time) (*domain.ClosingRecord, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE outlet_id = $1 AND closing_type = $2 AND closing_date = $3;
	`
	m, err := scanClosing(tx.QueryRow(ctx, query, outletID, string(closingType), date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closing for %s: %w", date.Format("2006-01-02"), err)
	}

	record := toDomainClosing(m)
	return &record, nil
}

// SaveClosingInTx inserts a fully-built closing record. The unique index on
// (outlet_id, closing_type, closing_date) backstops any race the advisory
// lock did not cover.
func (r *PgxClosingRepository) SaveClosingInTx(ctx context.Context, tx pgx.Tx, record domain.ClosingRecord) error {
	m := toModelClosing(record)

	query := `
		INSERT INTO closings (` + closingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33);
	`
	_, err := tx.Exec(ctx, query,
		m.ClosingID, m.OutletID, m.ClosingType, m.ClosingDate, m.PeriodStart, m.PeriodEnd, m.Status,
		m.OpeningCash, m.OpeningBank, m.ClosingCash, m.ClosingBank,
		m.CashSales, m.BankSales, m.CashPayments, m.BankPayments,
		m.TotalRevenue, m.TotalDiscount, m.TotalTax, m.SalesCount,
		m.TotalOpeningBalance, m.TotalClosingBalance,
		m.OpeningStockQty, m.OpeningStockValue, m.ClosingStockQty, m.ClosingStockValue,
		m.NetProfit, m.Notes, m.ClosedBy, m.ClosedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: closing for (%s, %s, %s) already exists",
				apperrors.ErrDuplicate, m.OutletID, m.ClosingType, m.ClosingDate.Format("2006-01-02"))
		}
		return fmt.Errorf("failed to save closing %s: %w", m.ClosingID, err)
	}
	return nil
}

func (r *PgxClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE closing_id = $1;
	`
	m, err := scanClosing(r.Pool.QueryRow(ctx, query, closingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closing %s: %w", closingID, err)
	}

	record := toDomainClosing(m)
	return &record, nil
}

func (r *PgxClosingRepository) FindLatestClosing(ctx context.Context, outletID string, closingType domain.ClosingType) (*domain.ClosingRecord, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE outlet_id = $1 AND closing_type = $2
		ORDER BY closing_date DESC
		LIMIT 1;
	`
	m, err := scanClosing(r.Pool.QueryRow(ctx, query, outletID, string(closingType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest %s closing: %w", closingType, err)
	}

	record := toDomainClosing(m)
	return &record, nil
}

func (r *PgxClosingRepository) ListClosings(ctx context.Context, outletID string, limit int, offset int) ([]domain.ClosingRecord, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM closings
		WHERE outlet_id = $1
		ORDER BY closing_date DESC, closing_type
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list closings: %w", err)
	}
	defer rows.Close()

	var records []domain.ClosingRecord
	for rows.Next() {
		m, err := scanClosing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan closing row: %w", err)
		}
		records = append(records, toDomainClosing(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating closing rows: %w", err)
	}

	return records, nil
}
