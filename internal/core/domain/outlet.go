package domain

// Outlet is a retail or workshop location. All financial records are scoped
// to exactly one outlet.
type Outlet struct {
	OutletID string `json:"outletID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
