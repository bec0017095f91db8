package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table.
type Account struct {
	AccountID   string          `db:"account_id"`
	OutletID    string          `db:"outlet_id"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	SubType     string          `db:"sub_type"`
	Description string          `db:"description"`
	IsActive    bool            `db:"is_active"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}

// LedgerEntry mirrors the ledger_entries table.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	OutletID      string          `db:"outlet_id"`
	AccountID     string          `db:"account_id"`
	EntryDate     time.Time       `db:"entry_date"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	Narration     string          `db:"narration"`
	ReferenceType string          `db:"reference_type"`
	AuditFields
}
