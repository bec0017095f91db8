package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	"github.com/retailbooks/retail_accounting_app/internal/models"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product inventory data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductReader {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProductRepository implements portsrepo.ProductReader
var _ portsrepo.ProductReader = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) FindActiveProducts(ctx context.Context, outletID string) ([]domain.Product, error) {
	query := `
		SELECT product_id, outlet_id, name, current_stock, cost_price, is_active
		FROM products
		WHERE outlet_id = $1 AND is_active = TRUE
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, outletID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(&m.ProductID, &m.OutletID, &m.Name, &m.CurrentStock, &m.CostPrice, &m.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, domain.Product{
			ProductID:    m.ProductID,
			OutletID:     m.OutletID,
			Name:         m.Name,
			CurrentStock: m.CurrentStock,
			CostPrice:    m.CostPrice,
			IsActive:     m.IsActive,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating product rows: %w", err)
	}

	return products, nil
}
