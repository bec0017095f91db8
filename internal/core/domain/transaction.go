package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how an operational transaction was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCard         PaymentMethod = "CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCredit       PaymentMethod = "CREDIT"
)

// MovesCash reports whether the method settles through the cash drawer.
func (m PaymentMethod) MovesCash() bool {
	return m == PaymentCash
}

// MovesBank reports whether the method settles through a bank account. Card
// and bank-transfer are treated uniformly as the bank channel.
func (m PaymentMethod) MovesBank() bool {
	return m == PaymentCard || m == PaymentBankTransfer
}

// Sale is a retail sale as recorded by the POS. Only the fields the closing
// engine aggregates are modelled here.
type Sale struct {
	SaleID        string          `json:"saleID"`
	OutletID      string          `json:"outletID"`
	SaleDate      time.Time       `json:"saleDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        string          `json:"status"` // COMPLETED, DRAFT, CANCELLED, ...
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	AuditFields
}

// SettledAmount is the figure a sale contributes to its payment channel:
// the amount actually paid, falling back to the gross total when no explicit
// paid amount was recorded.
func (s Sale) SettledAmount() decimal.Decimal {
	if s.PaidAmount.IsPositive() {
		return s.PaidAmount
	}
	return s.GrandTotal
}

// Purchase is a supplier purchase with its settlement details.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	OutletID      string          `json:"outletID"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        string          `json:"status"` // PAID, COMPLETED, ORDERED, ...
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	AuditFields
}

// SettledAmount is the amount a purchase contributes to its payment channel,
// with the same paid-amount fallback as sales.
func (p Purchase) SettledAmount() decimal.Decimal {
	if p.PaidAmount.IsPositive() {
		return p.PaidAmount
	}
	return p.GrandTotal
}

// Expense is an operational expense with its settlement details.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	OutletID      string          `json:"outletID"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        string          `json:"status"` // PAID, PARTIALLY_PAID, PENDING, ...
	Amount        decimal.Decimal `json:"amount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	AuditFields
}

// SettledAmount is the amount an expense contributes to its payment channel,
// with the same paid-amount fallback as sales.
func (e Expense) SettledAmount() decimal.Decimal {
	if e.PaidAmount.IsPositive() {
		return e.PaidAmount
	}
	return e.Amount
}
