package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/geo-registry/internal/config"
	"github.com/geo-registry/internal/delivery/http/handler"
	"github.com/geo-registry/internal/delivery/http/middleware"
	"github.com/geo-registry/internal/pkg/utils"
	"github.com/geo-registry/internal/usecase"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	auth *usecase.AuthUseCase

	// Handlers
	tenantHandler    *handler.TenantHandler
	clientHandler    *handler.ClientHandler
	continentHandler *handler.ContinentHandler
	countryHandler   *handler.CountryHandler
	stateHandler     *handler.StateHandler
	cityHandler      *handler.CityHandler
	areaHandler      *handler.AreaHandler
	locationHandler  *handler.LocationHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	auth *usecase.AuthUseCase,
	tenantHandler *handler.TenantHandler,
	clientHandler *handler.ClientHandler,
	continentHandler *handler.ContinentHandler,
	countryHandler *handler.CountryHandler,
	stateHandler *handler.StateHandler,
	cityHandler *handler.CityHandler,
	areaHandler *handler.AreaHandler,
	locationHandler *handler.LocationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Geo Registry",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: errorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		auth:             auth,
		tenantHandler:    tenantHandler,
		clientHandler:    clientHandler,
		continentHandler: continentHandler,
		countryHandler:   countryHandler,
		stateHandler:     stateHandler,
		cityHandler:      cityHandler,
		areaHandler:      areaHandler,
		locationHandler:  locationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов. Записи защищены X-API-KEY, чтения
// открыты; операции над тенантами требуют административный ключ.
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	apiKey := middleware.APIKey(s.auth)
	adminKey := middleware.AdminAPIKey(s.auth)

	// Tenants - только администраторы
	api.Post("/tenant", adminKey, s.tenantHandler.Create)
	api.Put("/tenant/:id", adminKey, s.tenantHandler.Update)
	api.Get("/tenant", adminKey, s.tenantHandler.List)
	api.Get("/tenant/:id", adminKey, s.tenantHandler.Get)

	// Clients
	api.Post("/client", apiKey, s.clientHandler.Create)
	api.Put("/client/:id", apiKey, s.clientHandler.Update)
	api.Get("/client", s.clientHandler.List)
	api.Get("/client/:id", s.clientHandler.Get)

	// Continents
	api.Post("/continent", apiKey, s.continentHandler.Create)
	api.Put("/continent/:id", apiKey, s.continentHandler.Update)
	api.Get("/continent", s.continentHandler.List)
	api.Get("/continent/search", s.continentHandler.Search)
	api.Get("/continent/:id", s.continentHandler.Get)

	// Countries
	api.Post("/country", apiKey, s.countryHandler.Create)
	api.Put("/country/:id", apiKey, s.countryHandler.Update)
	api.Get("/country", s.countryHandler.List)
	api.Get("/country/search", s.countryHandler.Search)
	api.Get("/country/getbycontinent/:continentId", s.countryHandler.ListByContinent)
	api.Get("/country/:id", s.countryHandler.Get)

	// States
	api.Post("/state", apiKey, s.stateHandler.Create)
	api.Put("/state/:id", apiKey, s.stateHandler.Update)
	api.Get("/state", s.stateHandler.List)
	api.Get("/state/search", s.stateHandler.Search)
	api.Get("/state/getbycountry/:countryId", s.stateHandler.ListByCountry)
	api.Get("/state/:id", s.stateHandler.Get)

	// Cities
	api.Post("/city", apiKey, s.cityHandler.Create)
	api.Put("/city/:id", apiKey, s.cityHandler.Update)
	api.Get("/city", s.cityHandler.List)
	api.Get("/city/search", s.cityHandler.Search)
	api.Get("/city/getbystate/:stateId", s.cityHandler.ListByState)
	api.Get("/city/getbycountry/:countryId", s.cityHandler.ListByCountry)
	api.Get("/city/:id", s.cityHandler.Get)

	// Areas
	api.Post("/area", apiKey, s.areaHandler.Create)
	api.Put("/area/:id", apiKey, s.areaHandler.Update)
	api.Get("/area", s.areaHandler.List)
	api.Get("/area/search", s.areaHandler.Search)
	api.Get("/area/getbycity/:cityId", s.areaHandler.ListByCity)
	api.Get("/area/getbystate/:stateId", s.areaHandler.ListByState)
	api.Get("/area/getbycountry/:countryId", s.areaHandler.ListByCountry)
	api.Get("/area/:id", s.areaHandler.Get)

	// Locations
	api.Post("/location", apiKey, s.locationHandler.Create)
	api.Put("/location/:id", apiKey, s.locationHandler.Update)
	api.Get("/location", s.locationHandler.List)
	api.Get("/location/search", s.locationHandler.Search)
	api.Get("/location/getbyarea/:areaId", s.locationHandler.ListByArea)
	api.Get("/location/getbycity/:cityId", s.locationHandler.ListByCity)
	api.Get("/location/getbystate/:stateId", s.locationHandler.ListByState)
	api.Get("/location/getbycountry/:countryId", s.locationHandler.ListByCountry)
	api.Get("/location/:id", s.locationHandler.Get)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App - доступ к приложению Fiber из тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// errorHandler - обработчик ошибок, дошедших до Fiber
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		// Ошибки маршрутизации самого Fiber (404 и т.п.)
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error:   "REQUEST_FAILED",
				Message: e.Message,
			})
		}
		return utils.SendError(c, err)
	}
}
