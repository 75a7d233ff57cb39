package repository

import (
	"context"
	"time"

	"mall-backend/internal/model"
)

// Repository defines data access for users and the token blacklist.
type Repository interface {
	// GetByUsername returns zero-value User (ID == 0) when not found.
	GetByUsername(ctx context.Context, username string) (model.User, error)

	// GetByID returns zero-value User (ID == 0) when not found.
	GetByID(ctx context.Context, id int64) (model.User, error)

	// CreateUser inserts a new account and returns its generated ID.
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)

	// BlacklistToken records a revoked token's JTI until it expires.
	BlacklistToken(ctx context.Context, jti string, expiresAt time.Time) error

	// IsTokenBlacklisted reports whether a JTI has been revoked.
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)

	// DeleteExpiredTokens removes blacklist rows past their expiry and
	// returns how many were dropped.
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}
