package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	"github.com/retailbooks/retail_accounting_app/internal/models"
)

// PgxTransactionStore provides the read-only operational transaction queries
// the closing engine aggregates over.
type PgxTransactionStore struct {
	BaseRepository
}

// newPgxTransactionStore creates a new transaction store.
func newPgxTransactionStore(pool *pgxpool.Pool) portsrepo.TransactionStoreFacade {
	return &PgxTransactionStore{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionStore implements portsrepo.TransactionStoreFacade
var _ portsrepo.TransactionStoreFacade = (*PgxTransactionStore)(nil)

// earliestDate runs a MIN(date) query; a NULL result means no rows at all.
func (r *PgxTransactionStore) earliestDate(ctx context.Context, query string, outletID string) (*time.Time, error) {
	var earliest *time.Time
	if err := r.Pool.QueryRow(ctx, query, outletID).Scan(&earliest); err != nil {
		return nil, err
	}
	return earliest, nil
}

func (r *PgxTransactionStore) FindEarliestSaleDate(ctx context.Context, outletID string) (*time.Time, error) {
	earliest, err := r.earliestDate(ctx, `SELECT MIN(sale_date) FROM sales WHERE outlet_id = $1`, outletID)
	if err != nil {
		return nil, fmt.Errorf("failed to find earliest sale date: %w", err)
	}
	return earliest, nil
}

func (r *PgxTransactionStore) FindEarliestPurchaseDate(ctx context.Context, outletID string) (*time.Time, error) {
	earliest, err := r.earliestDate(ctx, `SELECT MIN(purchase_date) FROM purchases WHERE outlet_id = $1`, outletID)
	if err != nil {
		return nil, fmt.Errorf("failed to find earliest purchase date: %w", err)
	}
	return earliest, nil
}

func (r *PgxTransactionStore) FindEarliestExpenseDate(ctx context.Context, outletID string) (*time.Time, error) {
	earliest, err := r.earliestDate(ctx, `SELECT MIN(expense_date) FROM expenses WHERE outlet_id = $1`, outletID)
	if err != nil {
		return nil, fmt.Errorf("failed to find earliest expense date: %w", err)
	}
	return earliest, nil
}

func (r *PgxTransactionStore) FindSalesInPeriod(ctx context.Context, outletID string, statuses []string, from, to time.Time) ([]domain.Sale, error) {
	query := `
		SELECT sale_id, outlet_id, sale_date, payment_method, status, grand_total, paid_amount, discount, tax
		FROM sales
		WHERE outlet_id = $1 AND status = ANY($2) AND sale_date >= $3 AND sale_date < $4
		ORDER BY sale_date;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, statuses, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales in period: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.OutletID, &m.SaleDate, &m.PaymentMethod, &m.Status, &m.GrandTotal, &m.PaidAmount, &m.Discount, &m.Tax); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, domain.Sale{
			SaleID:        m.SaleID,
			OutletID:      m.OutletID,
			SaleDate:      m.SaleDate,
			PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
			Status:        m.Status,
			GrandTotal:    m.GrandTotal,
			PaidAmount:    m.PaidAmount,
			Discount:      m.Discount,
			Tax:           m.Tax,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating sale rows: %w", err)
	}

	return sales, nil
}

func (r *PgxTransactionStore) FindPurchasesInPeriod(ctx context.Context, outletID string, statuses []string, from, to time.Time) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, outlet_id, purchase_date, payment_method, status, grand_total, paid_amount
		FROM purchases
		WHERE outlet_id = $1 AND status = ANY($2) AND purchase_date >= $3 AND purchase_date < $4
		ORDER BY purchase_date;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, statuses, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases in period: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var m models.Purchase
		if err := rows.Scan(&m.PurchaseID, &m.OutletID, &m.PurchaseDate, &m.PaymentMethod, &m.Status, &m.GrandTotal, &m.PaidAmount); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, domain.Purchase{
			PurchaseID:    m.PurchaseID,
			OutletID:      m.OutletID,
			PurchaseDate:  m.PurchaseDate,
			PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
			Status:        m.Status,
			GrandTotal:    m.GrandTotal,
			PaidAmount:    m.PaidAmount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating purchase rows: %w", err)
	}

	return purchases, nil
}

func (r *PgxTransactionStore) FindExpensesInPeriod(ctx context.Context, outletID string, statuses []string, from, to time.Time) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, outlet_id, expense_date, payment_method, status, amount, paid_amount
		FROM expenses
		WHERE outlet_id = $1 AND status = ANY($2) AND expense_date >= $3 AND expense_date < $4
		ORDER BY expense_date;
	`
	rows, err := r.Pool.Query(ctx, query, outletID, statuses, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses in period: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(&m.ExpenseID, &m.OutletID, &m.ExpenseDate, &m.PaymentMethod, &m.Status, &m.Amount, &m.PaidAmount); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, domain.Expense{
			ExpenseID:     m.ExpenseID,
			OutletID:      m.OutletID,
			ExpenseDate:   m.ExpenseDate,
			PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
			Status:        m.Status,
			Amount:        m.Amount,
			PaidAmount:    m.PaidAmount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating expense rows: %w", err)
	}

	return expenses, nil
}
