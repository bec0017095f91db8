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
	"github.com/retailbooks/retail_accounting_app/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserReader) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser verifies credentials. Both unknown usernames and wrong
// passwords return ErrNotFound so callers cannot probe which one failed.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find user by username")
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		s.LogDebug(ctx, "Login attempt for inactive user", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrNotFound
	}

	return user, nil
}
