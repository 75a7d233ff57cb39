package user

import (
	"context"

	"mall-backend/internal/model"
)

// UseCase is the account and session entry point.
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, sc model.Scope, token TokenInfo) error
	// CleanupExpiredTokens drops blacklist rows whose tokens have expired anyway.
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}
