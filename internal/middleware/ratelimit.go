package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"mall-backend/pkg/response"
)

// RateLimit throttles a route per client. Authenticated requests are keyed
// by user ID, anonymous ones by remote IP.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := ScopeFrom(c); ok {
			key = "u:" + strconv.FormatInt(sc.UserID, 10)
		}

		if !m.limiterFor(key).Allow() {
			response.ErrorMsg(c, 429, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *Middleware) limiterFor(key string) *rate.Limiter {
	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	lim, ok := m.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60.0), m.ratePerMin)
		m.limiters[key] = lim
	}
	return lim
}
