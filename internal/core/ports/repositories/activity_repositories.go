package repositories

import (
	"context"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// ActivityLogWriter appends audit trail entries. Callers treat failures as
// best-effort: log and move on, never propagate.
type ActivityLogWriter interface {
	// SaveActivity persists one activity log entry.
	SaveActivity(ctx context.Context, entry domain.ActivityLog) error
}
