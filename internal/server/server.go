package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"golden-thread/internal/auth"
	"golden-thread/internal/config"
	"golden-thread/internal/metrics"
	custommiddleware "golden-thread/internal/middleware"
	"golden-thread/internal/repository"
	"golden-thread/internal/service"
	"golden-thread/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	for _, mw := range custommiddleware.DefaultMiddlewareStack(cfg.Server.TrustedProxy) {
		router.Use(mw)
	}
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(metrics.Middleware())
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, !cfg.IsProduction()))

	router.Handle("/metrics", metrics.Handler())

	// Rate limiting is only active with a configured Redis
	var redisClient *redis.Client
	rateLimit := custommiddleware.Passthrough
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimit = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "golden-thread:ratelimit",
		}, logger)
		logger.Info("Rate limiting enabled", zap.String("redis_addr", cfg.Redis.Addr()))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.Expiry())
	userService := service.NewUserService(userRepo, issuer)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo, time.Now)
	contentService := service.NewContentService(blogRepo, reviewRepo, contactRepo)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(issuer, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)

	// Register routes
	transport.NewContentHandler(contentService, logger).RegisterRoutes(router, rateLimit)
	transport.NewAuthHandler(userService, logger).RegisterRoutes(router, rateLimit)
	transport.NewCatalogHandler(catalogService, logger).RegisterRoutes(router, authMiddleware, adminMiddleware)
	transport.NewOrderHandler(orderService, logger).RegisterRoutes(router, authMiddleware)
	transport.NewAdminHandler(orderService, catalogService, contentService, logger).RegisterRoutes(router, authMiddleware, adminMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
