package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
)

type PgxActivityLogRepository struct {
	BaseRepository
}

// newPgxActivityLogRepository creates a new repository for activity log entries.
func newPgxActivityLogRepository(pool *pgxpool.Pool) portsrepo.ActivityLogWriter {
	return &PgxActivityLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxActivityLogRepository implements portsrepo.ActivityLogWriter
var _ portsrepo.ActivityLogWriter = (*PgxActivityLogRepository)(nil)

func (r *PgxActivityLogRepository) SaveActivity(ctx context.Context, entry domain.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (activity_id, outlet_id, user_id, action, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	_, err := r.Pool.Exec(ctx, query,
		entry.ActivityID, entry.OutletID, entry.UserID, entry.Action, entry.Description, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save activity log entry: %w", err)
	}

	return nil
}
