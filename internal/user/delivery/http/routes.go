package http

import (
	"github.com/gin-gonic/gin"

	"mall-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", mw.Auth(), h.Logout)
	rg.GET("/verify", mw.Auth(), h.Verify)
}
