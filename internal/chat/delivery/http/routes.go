package http

import (
	"github.com/gin-gonic/gin"

	"mall-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All AI routes require authentication; the chat endpoint is additionally
// rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
		ai.GET("/messages", mw.Auth(), h.ListMessages)
		ai.POST("/messages", mw.Auth(), h.SaveMessage)
		ai.DELETE("/messages/:id", mw.Auth(), h.DeleteMessage)
		ai.POST("/keywords/reload", mw.Auth(), h.ReloadKeywords)
	}
}
