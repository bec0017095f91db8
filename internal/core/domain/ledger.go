package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerReferenceType marks what produced a ledger entry.
type LedgerReferenceType string

const (
	RefOpeningBalance LedgerReferenceType = "OPENING_BALANCE"
	RefAdjustment     LedgerReferenceType = "ADJUSTMENT"
	RefOperational    LedgerReferenceType = "OPERATIONAL"
)

// LedgerEntry is a single double-entry posting against an account. The closing
// engine reads entries only; posting them belongs to the voucher engine.
type LedgerEntry struct {
	EntryID       string              `json:"entryID"`   // Primary Key (UUID)
	OutletID      string              `json:"outletID"`  // FK -> outlets.outlet_id
	AccountID     string              `json:"accountID"` // FK -> accounts.account_id
	EntryDate     time.Time           `json:"entryDate"`
	Debit         decimal.Decimal     `json:"debit"`
	Credit        decimal.Decimal     `json:"credit"`
	Narration     string              `json:"narration"`
	ReferenceType LedgerReferenceType `json:"referenceType"`
	AuditFields
}

// SignedAmount is the entry's contribution to an account balance under the
// debit-positive convention used for cash and bank accounts.
func (e LedgerEntry) SignedAmount() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}
