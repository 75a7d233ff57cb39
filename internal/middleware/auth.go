package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/model"
	"mall-backend/pkg/response"
	"mall-backend/pkg/scope"
)

const (
	scopeKey  = "mall.scope"
	claimsKey = "mall.claims"
)

// Auth verifies the bearer token, rejects revoked tokens, loads the account
// and stores the resulting Scope in the request context.
func (m *Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c, "缺少令牌")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(token)
		if err != nil {
			response.Unauthorized(c, "无效的token")
			c.Abort()
			return
		}

		revoked, err := m.tokens.IsTokenBlacklisted(ctx, claims.JTI)
		if err != nil {
			m.l.Errorf(ctx, "middleware.Auth: blacklist check: %v", err)
			response.InternalError(c)
			c.Abort()
			return
		}
		if revoked {
			m.l.Warnf(ctx, "middleware.Auth: revoked token jti=%s", claims.JTI)
			response.Unauthorized(c, "令牌已失效")
			c.Abort()
			return
		}

		u, err := m.users.GetByID(ctx, claims.UserID)
		if err != nil {
			m.l.Errorf(ctx, "middleware.Auth: load user: %v", err)
			response.InternalError(c)
			c.Abort()
			return
		}
		if u.ID == 0 {
			response.Unauthorized(c, "无效的token")
			c.Abort()
			return
		}

		SetScope(c, model.Scope{UserID: u.ID, Username: u.Username})
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SetScope stores the Scope where ScopeFrom will find it.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// ScopeFrom returns the authenticated Scope stored by Auth.
func ScopeFrom(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// ClaimsFrom returns the verified token claims stored by Auth.
func ClaimsFrom(c *gin.Context) (scope.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return scope.Claims{}, false
	}
	claims, ok := v.(scope.Claims)
	return claims, ok
}
