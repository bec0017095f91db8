package repositories

import (
	"context"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// OutletReader defines read operations for outlet data.
type OutletReader interface {
	// FindOutletByID retrieves a specific outlet by its unique identifier.
	FindOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error)

	// ListOutlets retrieves a paginated list of outlets.
	ListOutlets(ctx context.Context, limit int, offset int) ([]domain.Outlet, error)
}
