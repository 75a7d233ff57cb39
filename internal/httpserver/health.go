package httpserver

import (
	"github.com/gin-gonic/gin"

	"mall-backend/pkg/response"
)

const (
	ServiceName   = "mall-backend"
	HealthVersion = "1.0.0"
)

// home describes the API surface for anyone poking at the root URL.
// @Summary Service info
// @Description Lists the main endpoint groups of the API
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service info"
// @Router / [get]
func (srv *HTTPServer) home(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "running",
		"message": "MallBackend API is running",
		"version": HealthVersion,
		"endpoints": gin.H{
			"products":    "/api/products",
			"cart":        "/api/cart",
			"ai_chat":     "/api/ai/chat",
			"ai_messages": "/api/ai/messages",
			"register":    "/api/register",
			"login":       "/api/login",
			"logout":      "/api/logout",
		},
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /api/health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "healthy"})
}
