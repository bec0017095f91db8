package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// AccountSubType classifies accounts below the fundamental type. The closing
// engine only cares about CASH and BANK; everything else is opaque to it.
type AccountSubType string

const (
	SubTypeCash  AccountSubType = "CASH"
	SubTypeBank  AccountSubType = "BANK"
	SubTypeOther AccountSubType = "OTHER"
)

// Account represents a financial account within the core domain.
type Account struct {
	AccountID    string          `json:"accountID"`   // Primary Key (UUID)
	OutletID     string          `json:"outletID"`    // FK -> outlets.outlet_id
	Name         string          `json:"name"`        // User-defined name
	AccountType  AccountType     `json:"accountType"` // ASSET, LIABILITY, etc.
	SubType      AccountSubType  `json:"subType"`     // CASH, BANK, OTHER
	Description  string          `json:"description"`
	IsActive     bool            `json:"isActive"`
	Balance      decimal.Decimal `json:"balance"`
	AuditFields
}
