package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/go-shop/config"
	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/model"
	"github.com/fekuna/go-shop/pkg/broker"
	"github.com/fekuna/go-shop/pkg/cache"
	"github.com/fekuna/go-shop/pkg/logger"
	"github.com/fekuna/go-shop/pkg/postgres"
	"github.com/fekuna/go-shop/pkg/search"

	authH "github.com/fekuna/go-shop/internal/auth/handler"
	authUCPkg "github.com/fekuna/go-shop/internal/auth/usecase"

	userH "github.com/fekuna/go-shop/internal/user/handler"
	userRepoPkg "github.com/fekuna/go-shop/internal/user/repository"
	userUCPkg "github.com/fekuna/go-shop/internal/user/usecase"

	catH "github.com/fekuna/go-shop/internal/category/handler"
	catRepoPkg "github.com/fekuna/go-shop/internal/category/repository"
	catUCPkg "github.com/fekuna/go-shop/internal/category/usecase"

	prodH "github.com/fekuna/go-shop/internal/product/handler"
	prodRepoPkg "github.com/fekuna/go-shop/internal/product/repository"
	prodUCPkg "github.com/fekuna/go-shop/internal/product/usecase"

	basketH "github.com/fekuna/go-shop/internal/basket/handler"
	basketRepoPkg "github.com/fekuna/go-shop/internal/basket/repository"
	basketUCPkg "github.com/fekuna/go-shop/internal/basket/usecase"

	orderH "github.com/fekuna/go-shop/internal/order/handler"
	orderRepoPkg "github.com/fekuna/go-shop/internal/order/repository"
	orderUCPkg "github.com/fekuna/go-shop/internal/order/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis (product list caching disabled)", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Kafka Producer
	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer kafkaProducer.Close()
	appLogger.Info("Connected to Kafka Producer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (search features might be limited)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 7. Initialize Repositories
	userRepo := userRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	basketRepo := basketRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db, prodRepo)

	// 8. Initialize UseCases
	tokenManager := auth.NewTokenManager(&cfg.JWT)
	authUC := authUCPkg.NewAuthUseCase(userRepo, tokenManager, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, catRepo, redisClient, esClient, appLogger)
	basketUC := basketUCPkg.NewBasketUseCase(basketRepo, prodRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, basketRepo, userRepo, kafkaProducer, appLogger)

	// 9. Initialize Handlers
	authHandler := authH.NewAuthHandler(authUC, appLogger)
	userHandler := userH.NewUserHandler(userUC, appLogger)
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	basketHandler := basketH.NewBasketHandler(basketUC, appLogger)
	orderHandler := orderH.NewOrderHandler(orderUC, appLogger)

	// 10. Routes
	authenticate := auth.Authenticate(tokenManager)
	adminOnly := auth.RequireRoles(model.RoleAdmin)
	userOnly := auth.RequireRoles(model.RoleUser)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authenticate)
		r.With(adminOnly).Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Get)
		r.Patch("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", catHandler.List)
		r.Get("/{id}", catHandler.Get)
		r.Group(func(r chi.Router) {
			r.Use(authenticate, adminOnly)
			r.Post("/", catHandler.Create)
			r.Patch("/{id}", catHandler.Update)
			r.Delete("/{id}", catHandler.Delete)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", prodHandler.List)
		r.Get("/{id}", prodHandler.Get)
		r.Group(func(r chi.Router) {
			r.Use(authenticate, adminOnly)
			r.Post("/", prodHandler.Create)
			r.Patch("/{id}", prodHandler.Update)
			r.Delete("/{id}", prodHandler.Delete)
		})
	})

	r.Route("/baskets", func(r chi.Router) {
		r.Use(authenticate, userOnly)
		r.Post("/add", basketHandler.Add)
		r.Get("/", basketHandler.List)
		r.Patch("/update/{id}", basketHandler.Update)
		r.Delete("/remove/{id}", basketHandler.Remove)
		r.Delete("/clear", basketHandler.Clear)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticate)
		r.With(userOnly).Post("/", orderHandler.Place)
		r.With(adminOnly).Get("/", orderHandler.ListAll)
		r.Get("/user/{id}", orderHandler.ListForUser)
		r.Get("/{id}", orderHandler.Get)
	})

	// 11. Start HTTP Server
	port := cfg.Server.HTTPPort
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
