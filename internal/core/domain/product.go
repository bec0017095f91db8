package domain

import (
	"github.com/shopspring/decimal"
)

// Product carries the inventory fields the closing engine snapshots. The full
// catalogue (pricing tiers, categories, variants) lives outside this core.
type Product struct {
	ProductID    string          `json:"productID"`
	OutletID     string          `json:"outletID"`
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
