package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snaapco/snaap_api/internal/cache"
	"github.com/snaapco/snaap_api/internal/config"
	"github.com/snaapco/snaap_api/internal/database"
	"github.com/snaapco/snaap_api/internal/handler"
	"github.com/snaapco/snaap_api/internal/middleware"
	"github.com/snaapco/snaap_api/internal/repository"
	"github.com/snaapco/snaap_api/internal/service"
)

// main is the application entrypoint for the Snaap storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting snaap api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize session cache
	sessionCache := cache.NewSessionCache(redisClient)

	// 4. Initialize upload storage
	uploadSvc, err := service.NewUploadService(cfg.UploadDir)
	if err != nil {
		log.Error().Err(err).Msg("upload directory initialization failed")
		fmt.Fprintf(os.Stderr, "upload directory initialization failed: %v\n", err)
		os.Exit(1)
	}

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 6. Initialize services
	catalogSvc := service.NewCatalogService(productRepo)
	productAdminSvc := service.NewProductAdminService(productRepo, uploadSvc)
	orderSvc := service.NewOrderService(orderRepo, productRepo, userRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	authSvc := service.NewAuthService(sessionCache, cfg)

	// 7. Initialize handlers
	loginLimiter := middleware.NewLoginRateLimiter()
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db, redisClient),
		Product:   handler.NewProductHandler(catalogSvc, productAdminSvc, cfg.BaseURL),
		Category:  handler.NewCategoryHandler(categoryRepo, uploadSvc, cfg.BaseURL),
		Brand:     handler.NewBrandHandler(brandRepo, uploadSvc, cfg.BaseURL),
		Order:     handler.NewOrderHandler(orderSvc, cfg.BaseURL),
		Review:    handler.NewReviewHandler(reviewSvc),
		Auth:      handler.NewAuthHandler(authSvc, loginLimiter, cfg),
		Customer:  handler.NewCustomerHandler(userRepo),
		Dashboard: handler.NewDashboardHandler(orderSvc),
	}

	// 8. Initialize middleware
	sessionMw := middleware.NewSessionMiddleware(authSvc)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Static("/uploads", cfg.UploadDir)
	setupRoutes(router, handlers, sessionMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Brand     *handler.BrandHandler
	Order     *handler.OrderHandler
	Review    *handler.ReviewHandler
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Dashboard *handler.DashboardHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, sessionMw *middleware.SessionMiddleware) {
	api := router.Group("/api")
	gate := sessionMw.Handle()

	api.GET("/health", handlers.Health.GetHealth)

	// Catalog: public reads, session-gated mutations
	api.GET("/products", handlers.Product.ListProducts)
	api.GET("/products/categories", handlers.Product.GetUsedCategories)
	api.GET("/products/brands", handlers.Product.GetUsedBrands)
	api.GET("/products/:id", handlers.Product.GetProduct)
	api.POST("/products", gate, handlers.Product.CreateProduct)
	api.PUT("/products/:id", gate, handlers.Product.UpdateProduct)
	api.DELETE("/products/:id", gate, handlers.Product.DeleteProduct)

	api.GET("/products/:id/reviews", handlers.Review.ListProductReviews)
	api.POST("/products/:id/reviews", handlers.Review.SubmitReview)

	api.GET("/categories", handlers.Category.ListCategories)
	api.POST("/categories", gate, handlers.Category.CreateCategory)
	api.PUT("/categories/:id", gate, handlers.Category.UpdateCategory)
	api.DELETE("/categories/:id", gate, handlers.Category.DeleteCategory)

	api.GET("/brands", handlers.Brand.ListBrands)
	api.POST("/brands", gate, handlers.Brand.CreateBrand)
	api.PUT("/brands/:id", gate, handlers.Brand.UpdateBrand)
	api.DELETE("/brands/:id", gate, handlers.Brand.DeleteBrand)

	// Orders: placed from the storefront, managed from the admin panel
	api.POST("/orders", handlers.Order.CreateOrder)
	api.GET("/orders", handlers.Order.ListOrders)
	api.GET("/orders/:id", handlers.Order.GetOrder)
	api.PATCH("/orders/:id", handlers.Order.UpdateOrderStatus)
	api.DELETE("/orders/:id", handlers.Order.DeleteOrder)

	// Admin auth
	api.POST("/auth/login", handlers.Auth.Login)
	api.POST("/auth/logout", handlers.Auth.Logout)
	api.GET("/auth/check", handlers.Auth.Check)

	admin := api.Group("/admin")
	admin.GET("/customers", handlers.Customer.ListCustomers)
	admin.GET("/dashboard", gate, handlers.Dashboard.GetDashboard)
	admin.GET("/reviews", gate, handlers.Review.ListAllReviews)
	admin.PATCH("/reviews/:id/approve", gate, handlers.Review.ApproveReview)
	admin.DELETE("/reviews/:id", gate, handlers.Review.DeleteReview)
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
