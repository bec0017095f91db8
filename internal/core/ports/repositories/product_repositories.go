package repositories

import (
	"context"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// ProductReader defines the read operations the closing engine needs for its
// inventory snapshot.
type ProductReader interface {
	// FindActiveProducts retrieves all active products for an outlet with
	// their current stock and cost price.
	FindActiveProducts(ctx context.Context, outletID string) ([]domain.Product, error)
}
