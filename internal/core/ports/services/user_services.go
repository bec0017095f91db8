package services

import (
	"context"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// UserSvcFacade provides user lookup and credential verification.
type UserSvcFacade interface {
	// GetUserByID retrieves a specific user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser verifies a username/password pair and returns the
	// user on success. Invalid credentials map to apperrors.ErrNotFound so
	// the handler cannot distinguish a missing user from a bad password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}
