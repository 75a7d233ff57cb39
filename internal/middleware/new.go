package middleware

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"mall-backend/internal/model"
	"mall-backend/pkg/log"
	"mall-backend/pkg/scope"
)

// UserStore loads the account a verified token belongs to.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (model.User, error)
}

// TokenChecker reports whether a token's JTI has been revoked.
type TokenChecker interface {
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	users      UserStore
	tokens     TokenChecker

	ratePerMin int
	limiterMu  sync.Mutex
	limiters   map[string]*rate.Limiter
}

// New creates the shared HTTP middleware set.
func New(l log.Logger, jwtManager scope.Manager, users UserStore, tokens TokenChecker, ratePerMin int) *Middleware {
	if ratePerMin <= 0 {
		ratePerMin = 60
	}
	return &Middleware{
		l:          l,
		jwtManager: jwtManager,
		users:      users,
		tokens:     tokens,
		ratePerMin: ratePerMin,
		limiters:   make(map[string]*rate.Limiter),
	}
}
