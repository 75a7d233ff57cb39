package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	cartHTTP "mall-backend/internal/cart/delivery/http"
	chatHTTP "mall-backend/internal/chat/delivery/http"
	"mall-backend/internal/model"
	productHTTP "mall-backend/internal/product/delivery/http"
	userHTTP "mall-backend/internal/user/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if srv.environment == string(model.EnvironmentProduction) {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		corsCfg.AllowAllOrigins = true
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
	srv.gin.Use(cors.New(corsCfg))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.home)
	srv.gin.GET("/api/health", srv.healthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under the /api prefix.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api")

	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, srv.userUC), srv.mw)
	productHTTP.RegisterRoutes(api, productHTTP.New(srv.l, srv.productUC), srv.mw)
	cartHTTP.RegisterRoutes(api, cartHTTP.New(srv.l, srv.cartUC), srv.mw)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC), srv.mw)
}
