package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Closing mirrors the closings table.
type Closing struct {
	ClosingID   string    `db:"closing_id"`
	OutletID    string    `db:"outlet_id"`
	ClosingType string    `db:"closing_type"`
	ClosingDate time.Time `db:"closing_date"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	Status      string    `db:"status"`

	OpeningCash decimal.Decimal `db:"opening_cash"`
	OpeningBank decimal.Decimal `db:"opening_bank"`
	ClosingCash decimal.Decimal `db:"closing_cash"`
	ClosingBank decimal.Decimal `db:"closing_bank"`

	CashSales    decimal.Decimal `db:"cash_sales"`
	BankSales    decimal.Decimal `db:"bank_sales"`
	CashPayments decimal.Decimal `db:"cash_payments"`
	BankPayments decimal.Decimal `db:"bank_payments"`

	TotalRevenue  decimal.Decimal `db:"total_revenue"`
	TotalDiscount decimal.Decimal `db:"total_discount"`
	TotalTax      decimal.Decimal `db:"total_tax"`
	SalesCount    int             `db:"sales_count"`

	TotalOpeningBalance decimal.Decimal `db:"total_opening_balance"`
	TotalClosingBalance decimal.Decimal `db:"total_closing_balance"`

	OpeningStockQty   decimal.Decimal `db:"opening_stock_qty"`
	OpeningStockValue decimal.Decimal `db:"opening_stock_value"`
	ClosingStockQty   decimal.Decimal `db:"closing_stock_qty"`
	ClosingStockValue decimal.Decimal `db:"closing_stock_value"`

	NetProfit decimal.Decimal `db:"net_profit"`

	Notes    string    `db:"notes"`
	ClosedBy string    `db:"closed_by"`
	ClosedAt time.Time `db:"closed_at"`
	AuditFields
}
