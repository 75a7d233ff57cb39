package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/cart"
	"mall-backend/internal/chat"
	"mall-backend/internal/middleware"
	"mall-backend/internal/product"
	"mall-backend/internal/user"
	"mall-backend/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw *middleware.Middleware

	userUC    user.UseCase
	productUC product.UseCase
	cartUC    cart.UseCase
	chatUC    chat.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware *middleware.Middleware

	UserUC    user.UseCase
	ProductUC product.UseCase
	CartUC    cart.UseCase
	ChatUC    chat.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		userUC:      cfg.UserUC,
		productUC:   cfg.ProductUC,
		cartUC:      cfg.CartUC,
		chatUC:      cfg.ChatUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mw == nil {
		return errors.New("middleware is required")
	}
	if srv.userUC == nil || srv.productUC == nil || srv.cartUC == nil || srv.chatUC == nil {
		return errors.New("all domain usecases are required")
	}
	return nil
}
