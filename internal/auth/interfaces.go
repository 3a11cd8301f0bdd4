package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/redmonkez12/devconnector-api/internal/user"
)

// TokenService defines token creation and validation.
// Implemented by TokenCodec.
type TokenService interface {
	Issue(subjectID string) (string, error)
	Verify(tokenStr string) (string, error)
}

// UserStore is the subset of user persistence the account flows need.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, avatar string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// RateLimiter throttles anonymous account endpoints per client IP.
type RateLimiter interface {
	CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error)
	RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error
}
