package http

import (
	"github.com/gin-gonic/gin"

	"mall-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every cart operation requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	carts := rg.Group("/cart", mw.Auth())
	{
		carts.GET("", h.Get)
		carts.POST("", h.Add)
		carts.PUT("", h.Update)
		carts.DELETE("/:item_id", h.Remove)
	}
}
