package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the inventory columns of the products table.
type Product struct {
	ProductID    string          `db:"product_id"`
	OutletID     string          `db:"outlet_id"`
	Name         string          `db:"name"`
	CurrentStock decimal.Decimal `db:"current_stock"`
	CostPrice    decimal.Decimal `db:"cost_price"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}

// Outlet mirrors the outlets table.
type Outlet struct {
	OutletID string `db:"outlet_id"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	Phone    string `db:"phone"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// User mirrors the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// ActivityLog mirrors the activity_logs table.
type ActivityLog struct {
	ActivityID  string    `db:"activity_id"`
	OutletID    string    `db:"outlet_id"`
	UserID      string    `db:"user_id"`
	Action      string    `db:"action"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
