package services

import (
	"context"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	"github.com/retailbooks/retail_accounting_app/internal/dto"
)

// ClosingSvcFacade is the period closing engine's service interface.
type ClosingSvcFacade interface {
	// ClosePeriod locks one accounting day or month for an outlet and
	// persists the immutable closing snapshot. It fails with
	// apperrors.ErrValidation for bad input, a SequenceViolationError when
	// the preceding period is not closed, and apperrors.ErrDuplicate when
	// the period is already closed.
	ClosePeriod(ctx context.Context, outletID string, req dto.CreateClosingRequest, userID string) (*domain.ClosingRecord, error)

	// GetClosingByID retrieves a single closing record scoped to an outlet.
	GetClosingByID(ctx context.Context, outletID string, closingID string) (*domain.ClosingRecord, error)

	// GetLatestClosing retrieves the outlet's most recent closing of a type.
	GetLatestClosing(ctx context.Context, outletID string, closingType domain.ClosingType) (*domain.ClosingRecord, error)

	// ListClosings retrieves the outlet's closings, most recent first.
	ListClosings(ctx context.Context, outletID string, limit int, offset int) ([]domain.ClosingRecord, error)
}
