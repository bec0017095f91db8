package repositories

import (
	"context"
	"time"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// SaleReader defines read operations over sales.
type SaleReader interface {
	// FindEarliestSaleDate returns the date of the outlet's oldest sale, or
	// nil when the outlet has no sales at all.
	FindEarliestSaleDate(ctx context.Context, outletID string) (*time.Time, error)

	// FindSalesInPeriod retrieves sales whose status is in statuses and whose
	// sale date falls in the half-open window [from, to).
	FindSalesInPeriod(ctx context.Context, outletID string, statuses []string, from, to time.Time) ([]domain.Sale, error)
}

// PurchaseReader defines read operations over purchases.
type PurchaseReader interface {
	// FindEarliestPurchaseDate returns the date of the outlet's oldest
	// purchase, or nil when none exists.
	FindEarliestPurchaseDate(ctx context.Context, outletID string) (*time.Time, error)

	// FindPurchasesInPeriod retrieves purchases whose status is in statuses
	// and whose purchase date falls in the half-open window [from, to).
	FindPurchasesInPeriod(ctx context.Context, outletID string, statuses []string, from, to time.Time) ([]domain.Purchase, error)
}

// ExpenseReader defines read operations over expenses.
type ExpenseReader interface {
	// FindEarliestExpenseDate returns the date of the outlet's oldest
	// expense, or nil when none exists.
	FindEarliestExpenseDate(ctx context.Context, outletID string) (*time.Time, error)

	// FindExpensesInPeriod retrieves expenses whose status is in statuses and
	// whose expense date falls in the half-open window [from, to).
	FindExpensesInPeriod(ctx context.Context, outletID string, statuses []string, from, to time.Time) ([]domain.Expense, error)
}

// TransactionStoreFacade combines the read-only operational transaction
// queries the closing engine aggregates over.
type TransactionStoreFacade interface {
	SaleReader
	PurchaseReader
	ExpenseReader
}
