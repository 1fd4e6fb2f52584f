package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/travelmate-console/internal/config"
	"github.com/travelmate-console/internal/delivery/http/handler"
	"github.com/travelmate-console/internal/delivery/http/middleware"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/pkg/utils"
)

// Server is the Fiber HTTP server wiring handlers to routes.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	catalogHandler    *handler.CatalogHandler
	wizardHandler     *handler.WizardHandler
	moderationHandler *handler.ModerationHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	catalogHandler *handler.CatalogHandler,
	wizardHandler *handler.WizardHandler,
	moderationHandler *handler.ModerationHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "TravelMate Console",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		catalogHandler:    catalogHandler,
		wizardHandler:     wizardHandler,
		moderationHandler: moderationHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Catalog routes
	api.Get("/catalog", s.catalogHandler.Snapshot)
	api.Post("/catalog/refresh", s.catalogHandler.Refresh)
	api.Get("/catalog/:type/:id", s.catalogHandler.Detail)
	api.Get("/catalog/:type/:id/actions/:action", s.catalogHandler.Dispatch)

	// Moderation routes
	api.Post("/moderation/:type/:id", s.moderationHandler.Decide)

	// Wizard routes
	wizard := api.Group("/wizard")
	wizard.Post("/", s.wizardHandler.Start)
	wizard.Get("/:sid", s.wizardHandler.Session)
	wizard.Delete("/:sid", s.wizardHandler.Discard)
	wizard.Post("/:sid/advance", s.wizardHandler.Advance)
	wizard.Post("/:sid/back", s.wizardHandler.Back)
	wizard.Put("/:sid/category", s.wizardHandler.SetCategory)
	wizard.Put("/:sid/identity", s.wizardHandler.SetIdentity)
	wizard.Put("/:sid/logistics", s.wizardHandler.SetLogistics)
	wizard.Put("/:sid/coordinate", s.wizardHandler.SetCoordinate)
	wizard.Post("/:sid/toggle", s.wizardHandler.Toggle)
	wizard.Post("/:sid/images", s.wizardHandler.AppendImage)
	wizard.Delete("/:sid/images/:index", s.wizardHandler.RemoveImage)
	wizard.Post("/:sid/geosearch", s.wizardHandler.Geosearch)
	wizard.Post("/:sid/commit", s.wizardHandler.Commit)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler catches errors that escape the handlers, including
// fiber routing errors.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(utils.ErrorResponse{
				Error: errors.New("HTTP_ERROR", e.Message, e.Code),
			})
		}

		return utils.SendError(c, err)
	}
}
