package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dukastore/dukastore-backend/config"
	"github.com/dukastore/dukastore-backend/internal/app/controller"
	"github.com/dukastore/dukastore-backend/internal/app/repository"
	"github.com/dukastore/dukastore-backend/internal/app/service"
	"github.com/dukastore/dukastore-backend/internal/db"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/dukastore/dukastore-backend/internal/router"
	"github.com/dukastore/dukastore-backend/internal/storage"
	"github.com/dukastore/dukastore-backend/pkg/logger"
	"github.com/dukastore/dukastore-backend/pkg/redis"
	"github.com/dukastore/dukastore-backend/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Dukastore Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis backs the logout token blacklist. The server still runs
	// without it; logout then relies on token expiry alone.
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, token blacklist disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	resetRepo := repository.NewPasswordResetRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	brandRepo := repository.NewBrandRepository(db.GetDB())
	colorRepo := repository.NewColorRepository(db.GetDB())
	couponRepo := repository.NewCouponRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	wishlistRepo := repository.NewWishlistRepository(db.GetDB())

	// Services
	mailer := util.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Password)
	authService := service.NewAuthService(userRepo, &cfg.JWT)
	passwordResetService := service.NewPasswordResetService(userRepo, resetRepo, mailer)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, colorRepo, db.GetDB())
	catalogService := service.NewCatalogService(categoryRepo, brandRepo, colorRepo)
	couponService := service.NewCouponService(couponRepo)
	cartService := service.NewCartService(cartRepo, productRepo, couponRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, db.GetDB())
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)

	// Controllers
	resetBaseURL := "http://localhost:3000"
	if len(cfg.CORS.AllowedOrigins) > 0 {
		resetBaseURL = cfg.CORS.AllowedOrigins[0]
	}
	imageStore := storage.NewImageStore(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	authController := controller.NewAuthController(authService, passwordResetService, resetBaseURL)
	userController := controller.NewUserController(userService)
	productController := controller.NewProductController(productService)
	catalogController := controller.NewCatalogController(catalogService)
	couponController := controller.NewCouponController(couponService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	wishlistController := controller.NewWishlistController(wishlistService)
	uploadController := controller.NewUploadController(imageStore)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	r := router.NewRouter(
		authController,
		userController,
		productController,
		catalogController,
		couponController,
		cartController,
		orderController,
		wishlistController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
