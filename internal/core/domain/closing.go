package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingType identifies the kind of period a closing locks.
type ClosingType string

const (
	ClosingTypeDay   ClosingType = "DAY"
	ClosingTypeMonth ClosingType = "MONTH"
)

// ClosingStatus is the state of a closing record. A closing is created
// directly in its terminal state; there is no draft or voided state.
type ClosingStatus string

const (
	ClosingStatusClosed ClosingStatus = "CLOSED"
)

// ClosingRecord is the immutable snapshot of one closed accounting period for
// an outlet. At most one record exists per (outlet, type, date); records are
// never updated or deleted, and the next period's opening balances are copied
// from this record rather than recomputed.
type ClosingRecord struct {
	ClosingID   string        `json:"closingID"`   // Primary Key (UUID)
	OutletID    string        `json:"outletID"`    // FK -> outlets.outlet_id
	ClosingType ClosingType   `json:"closingType"` // DAY or MONTH
	ClosingDate time.Time     `json:"closingDate"` // Nominal anchor date, midnight
	PeriodStart time.Time     `json:"periodStart"` // First instant aggregated
	PeriodEnd   time.Time     `json:"periodEnd"`   // Last instant aggregated (06:00 cutoff)
	Status      ClosingStatus `json:"status"`

	OpeningCash decimal.Decimal `json:"openingCash"`
	OpeningBank decimal.Decimal `json:"openingBank"`
	ClosingCash decimal.Decimal `json:"closingCash"`
	ClosingBank decimal.Decimal `json:"closingBank"`

	CashSales    decimal.Decimal `json:"cashSales"`
	BankSales    decimal.Decimal `json:"bankSales"`
	CashPayments decimal.Decimal `json:"cashPayments"` // cash purchase + expense payments
	BankPayments decimal.Decimal `json:"bankPayments"` // bank purchase + expense payments

	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	SalesCount    int             `json:"salesCount"`

	TotalOpeningBalance decimal.Decimal `json:"totalOpeningBalance"` // openingCash + openingBank
	TotalClosingBalance decimal.Decimal `json:"totalClosingBalance"` // closingCash + closingBank

	OpeningStockQty   decimal.Decimal `json:"openingStockQty"`
	OpeningStockValue decimal.Decimal `json:"openingStockValue"`
	ClosingStockQty   decimal.Decimal `json:"closingStockQty"`
	ClosingStockValue decimal.Decimal `json:"closingStockValue"`

	NetProfit decimal.Decimal `json:"netProfit"` // totalRevenue - (cashPayments + bankPayments)

	Notes    string    `json:"notes"`
	ClosedBy string    `json:"closedBy"` // UserID Reference
	ClosedAt time.Time `json:"closedAt"`
	AuditFields
}

// SalesSummary holds the aggregated sales figures for one period window.
type SalesSummary struct {
	CashSales     decimal.Decimal
	BankSales     decimal.Decimal
	TotalRevenue  decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	Count         int
}

// PaymentSummary holds the channel-split outgoing payments (purchases or
// expenses) for one period window.
type PaymentSummary struct {
	Cash decimal.Decimal
	Bank decimal.Decimal
}

// StockSnapshot is a point-in-time inventory valuation over active products.
type StockSnapshot struct {
	Quantity decimal.Decimal
	Value    decimal.Decimal // sum of stock * cost price
}
