package services

import (
	"context"
	"time"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for bearer token issuance.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the given user and returns
	// it along with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
