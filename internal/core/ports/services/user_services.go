package services

import (
	"context"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/dto"
)

// UserSvcFacade defines application user operations.
type UserSvcFacade interface {
	// CreateUser persists a new user with a bcrypt password hash.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// VerifyCredentials checks a username/password pair and returns the user
	// on success. Failures are reported as apperrors.ErrForbidden without
	// distinguishing unknown users from wrong passwords.
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
}
