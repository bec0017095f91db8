package domain

import "time"

// ActivityLog is one audit trail entry. Writes are best-effort: a failed
// append must never fail the operation that produced it.
type ActivityLog struct {
	ActivityID  string    `json:"activityID"` // Primary Key (UUID)
	OutletID    string    `json:"outletID"`
	UserID      string    `json:"userID"`
	Action      string    `json:"action"`      // e.g. "closing.day.created"
	Description string    `json:"description"` // Human-readable summary
	CreatedAt   time.Time `json:"createdAt"`
}
