package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	"github.com/retailbooks/retail_accounting_app/internal/models"
)

type PgxOutletRepository struct {
	BaseRepository
}

// newPgxOutletRepository creates a new repository for outlet data.
func newPgxOutletRepository(pool *pgxpool.Pool) portsrepo.OutletReader {
	return &PgxOutletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxOutletRepository implements portsrepo.OutletReader
var _ portsrepo.OutletReader = (*PgxOutletRepository)(nil)

func toDomainOutlet(m models.Outlet) domain.Outlet {
	return domain.Outlet{
		OutletID: m.OutletID,
		Name:     m.Name,
		Address:  m.Address,
		Phone:    m.Phone,
		IsActive: m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const outletColumns = `outlet_id, name, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanOutlet(row rowScanner) (models.Outlet, error) {
	var m models.Outlet
	err := row.Scan(&m.OutletID, &m.Name, &m.Address, &m.Phone, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxOutletRepository) FindOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error) {
	query := `SELECT ` + outletColumns + ` FROM outlets WHERE outlet_id = $1;`

	m, err := scanOutlet(r.Pool.QueryRow(ctx, query, outletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find outlet %s: %w", outletID, err)
	}

	outlet := toDomainOutlet(m)
	return &outlet, nil
}

func (r *PgxOutletRepository) ListOutlets(ctx context.Context, limit int, offset int) ([]domain.Outlet, error) {
	query := `SELECT ` + outletColumns + ` FROM outlets ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list outlets: %w", err)
	}
	defer rows.Close()

	var outlets []domain.Outlet
	for rows.Next() {
		m, err := scanOutlet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outlet row: %w", err)
		}
		outlets = append(outlets, toDomainOutlet(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating outlet rows: %w", err)
	}

	return outlets, nil
}
