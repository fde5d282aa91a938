package main

// @title Geo Registry API
// @version 1.0.0
// @description Мультитенантный реестр географических справочников: иерархия Continent -> Country -> State -> City -> Area -> Location.
// @description
// @description Основные возможности:
// @description - Управление тенантами и их API-ключами (административные операции)
// @description - Клиенты тенантов и привязанные к ним континенты
// @description - CRUD и поиск по всем шести уровням иерархии
// @description - Денормализованные имена предков в ответах

// @contact.name API Support
// @contact.email support@geo-registry.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/geo-registry/docs/swagger"
	"github.com/geo-registry/internal/config"
	httpDelivery "github.com/geo-registry/internal/delivery/http"
	"github.com/geo-registry/internal/delivery/http/handler"
	"github.com/geo-registry/internal/pkg/apikey"
	"github.com/geo-registry/internal/pkg/logger"
	"github.com/geo-registry/internal/repository/cache"
	"github.com/geo-registry/internal/repository/postgres"
	"github.com/geo-registry/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geo Registry")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	tenantRepo := postgres.NewTenantRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	continentRepo := postgres.NewContinentRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	stateRepo := postgres.NewStateRepository(db)
	cityRepo := postgres.NewCityRepository(db)
	areaRepo := postgres.NewAreaRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	cipher, err := apikey.NewCipher(cfg.Encryption.SecretKey)
	if err != nil {
		log.Fatal("Failed to initialize api key cipher", zap.Error(err))
	}

	authUC := usecase.NewAuthUseCase(tenantRepo, cfg.Auth.AdminEmails, log)
	tenantUC := usecase.NewTenantUseCase(tenantRepo, cipher, authUC, log)
	clientUC := usecase.NewClientUseCase(clientRepo, tenantRepo, log)

	resolver := usecase.NewAncestorResolver(continentRepo, countryRepo, stateRepo, cityRepo, areaRepo)

	continentUC := usecase.NewContinentUseCase(continentRepo, clientRepo, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	countryUC := usecase.NewCountryUseCase(countryRepo, continentRepo, resolver, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	stateUC := usecase.NewStateUseCase(stateRepo, countryRepo, resolver, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	cityUC := usecase.NewCityUseCase(cityRepo, stateRepo, resolver, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	areaUC := usecase.NewAreaUseCase(areaRepo, cityRepo, stateRepo, resolver, cacheRepo, log, cfg.Cache.SearchCacheTTL)
	locationUC := usecase.NewLocationUseCase(locationRepo, areaRepo, cityRepo, stateRepo, resolver, cacheRepo, log, cfg.Cache.SearchCacheTTL)

	log.Info("Use cases initialized")

	// 8. Bootstrap admin tenants
	bootstrapCtx, bootstrapCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer bootstrapCancel()

	if err := tenantUC.Bootstrap(bootstrapCtx, cfg.Auth.AdminNames, cfg.Auth.AdminEmails); err != nil {
		log.Fatal("Failed to bootstrap admin tenants", zap.Error(err))
	}
	log.Info("Admin tenants bootstrapped")

	// 9. Initialize HTTP Handlers
	tenantHandler := handler.NewTenantHandler(tenantUC, log)
	clientHandler := handler.NewClientHandler(clientUC, log)
	continentHandler := handler.NewContinentHandler(continentUC, log)
	countryHandler := handler.NewCountryHandler(countryUC, log)
	stateHandler := handler.NewStateHandler(stateUC, log)
	cityHandler := handler.NewCityHandler(cityUC, log)
	areaHandler := handler.NewAreaHandler(areaUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		tenantHandler,
		clientHandler,
		continentHandler,
		countryHandler,
		stateHandler,
		cityHandler,
		areaHandler,
		locationHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
