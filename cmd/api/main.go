package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mall-backend/config"
	_ "mall-backend/docs" // Swagger docs
	cartMySQL "mall-backend/internal/cart/repository/mysql"
	cartUsecase "mall-backend/internal/cart/usecase"
	"mall-backend/internal/chat/intent"
	"mall-backend/internal/chat/keyword"
	chatMySQL "mall-backend/internal/chat/repository/mysql"
	chatUsecase "mall-backend/internal/chat/usecase"
	"mall-backend/internal/httpserver"
	"mall-backend/internal/middleware"
	productMySQL "mall-backend/internal/product/repository/mysql"
	productUsecase "mall-backend/internal/product/usecase"
	"mall-backend/internal/storage"
	userMySQL "mall-backend/internal/user/repository/mysql"
	userUsecase "mall-backend/internal/user/usecase"
	"mall-backend/pkg/ark"
	"mall-backend/pkg/log"
	"mall-backend/pkg/scope"
)

// @title       MallBackend API
// @description Mall shopping backend with accounts, catalog, cart and an AI shopping assistant.
// @version     1
// @host        localhost:5000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MallBackend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := storage.Connect(ctx, cfg.MySQL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MySQL: %v", err)
		return
	}
	defer db.Close()

	if err := storage.EnsureSchema(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to ensure schema: %v", err)
		return
	}

	// 4. Repositories
	userRepo := userMySQL.New(db, logger)
	productRepo := productMySQL.New(db, logger)
	cartRepo := cartMySQL.New(db, logger)
	chatRepo := chatMySQL.New(db, logger)

	// 5. Auth plumbing
	jwtManager := scope.New(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	mw := middleware.New(logger, jwtManager, userRepo, userRepo, cfg.Chat.RateLimitPerMin)

	// 6. Domain usecases
	userUC := userUsecase.New(userRepo, jwtManager, logger)
	productUC := productUsecase.New(productRepo, cartRepo, logger)
	cartUC := cartUsecase.New(cartRepo, productRepo, logger)

	if err := productUC.Seed(ctx); err != nil {
		logger.Warnf(ctx, "Failed to seed catalog: %v", err)
	}

	// 7. Chat pipeline
	vocab := keyword.Default()
	tokenizer, err := keyword.NewTokenizer(vocab)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load segmenter: %v", err)
		return
	}

	index := keyword.NewIndex(productRepo, tokenizer, vocab, logger)
	if err := index.Build(ctx); err != nil {
		logger.Warnf(ctx, "Initial keyword index build failed, will retry lazily: %v", err)
	}

	extractor, err := keyword.NewExtractor(tokenizer, vocab, index, cfg.Chat.MaxKeywords)
	if err != nil {
		logger.Fatalf(ctx, "Failed to build keyword extractor: %v", err)
		return
	}
	classifier := intent.NewClassifier(vocab, tokenizer, index.Contains)

	arkClient, err := ark.New(ark.Config{
		APIKey:  cfg.Ark.APIKey,
		Model:   cfg.Ark.DefaultModel,
		BaseURL: cfg.Ark.BaseURL,
		Timeout: cfg.Ark.Timeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create Ark client: %v", err)
		return
	}

	chatUC := chatUsecase.New(logger, chatRepo, productRepo, index, extractor, classifier, arkClient, chatUsecase.Config{
		DefaultModel:         cfg.Ark.DefaultModel,
		UserDedupWindow:      cfg.Chat.UserDedupWindow,
		AssistantDedupWindow: cfg.Chat.AssistantDedupWindow,
		MaxCandidates:        cfg.Chat.MaxCandidates,
	})

	// 8. Background token blacklist cleanup
	go func() {
		interval := cfg.Cleanup.Interval
		if interval <= 0 {
			interval = time.Hour
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := userUC.CleanupExpiredTokens(ctx)
				if err != nil {
					logger.Warnf(ctx, "Token cleanup failed: %v", err)
					continue
				}
				if n > 0 {
					logger.Infof(ctx, "Token cleanup removed %d expired entries", n)
				}
			}
		}
	}()

	// 9. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		UserUC:      userUC,
		ProductUC:   productUC,
		CartUC:      cartUC,
		ChatUC:      chatUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
