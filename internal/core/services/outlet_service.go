package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/retail_accounting_app/internal/core/ports/services"
)

// outletService implements the OutletSvcFacade interface
type outletService struct {
	BaseService
	outletRepo portsrepo.OutletReader
}

// NewOutletService creates a new outlet service.
func NewOutletService(repo portsrepo.OutletReader) portssvc.OutletSvcFacade {
	return &outletService{outletRepo: repo}
}

// Ensure outletService implements the OutletSvcFacade interface
var _ portssvc.OutletSvcFacade = (*outletService)(nil)

func (s *outletService) GetOutletByID(ctx context.Context, outletID string) (*domain.Outlet, error) {
	outlet, err := s.outletRepo.FindOutletByID(ctx, outletID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find outlet by ID",
				slog.String("outlet_id", outletID))
		}
		return nil, err
	}
	return outlet, nil
}

func (s *outletService) ListOutlets(ctx context.Context, limit int, offset int) ([]domain.Outlet, error) {
	outlets, err := s.outletRepo.ListOutlets(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list outlets",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list outlets: %w", err)
	}

	if outlets == nil {
		return []domain.Outlet{}, nil
	}
	return outlets, nil
}
