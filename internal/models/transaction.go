package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors the sales table.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	OutletID      string          `db:"outlet_id"`
	SaleDate      time.Time       `db:"sale_date"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	GrandTotal    decimal.Decimal `db:"grand_total"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	Discount      decimal.Decimal `db:"discount"`
	Tax           decimal.Decimal `db:"tax"`
	AuditFields
}

// Purchase mirrors the purchases table.
type Purchase struct {
	PurchaseID    string          `db:"purchase_id"`
	OutletID      string          `db:"outlet_id"`
	PurchaseDate  time.Time       `db:"purchase_date"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	GrandTotal    decimal.Decimal `db:"grand_total"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	AuditFields
}

// Expense mirrors the expenses table.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	OutletID      string          `db:"outlet_id"`
	ExpenseDate   time.Time       `db:"expense_date"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	Amount        decimal.Decimal `db:"amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	AuditFields
}
