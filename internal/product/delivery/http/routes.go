package http

import (
	"github.com/gin-gonic/gin"

	"mall-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Reads are public; catalog mutations require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/search", h.Search)
		products.GET("/:id/detail", h.Detail)
		products.POST("", mw.Auth(), h.Create)
		products.PUT("/:id", mw.Auth(), h.Update)
		products.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
