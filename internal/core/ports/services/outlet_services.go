package services

import (
	"context"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// OutletSvcFacade provides read access to outlets.
type OutletSvcFacade interface {
	// GetOutletByID retrieves a specific outlet.
	GetOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error)

	// ListOutlets retrieves a paginated list of outlets.
	ListOutlets(ctx context.Context, limit int, offset int) ([]domain.Outlet, error)
}
