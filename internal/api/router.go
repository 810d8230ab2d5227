package api

import (
	"os"
	"path/filepath"

	"studiekompas/docs"
	"studiekompas/internal/api/handlers"
	"studiekompas/pkg/config"
	"studiekompas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Help          *handlers.HelpHandler
	Session       *handlers.SessionHandler
	Questionnaire *handlers.QuestionnaireHandler
	Results       *handlers.ResultsHandler
	Chat          *handlers.ChatHandler
}

func SetupRouter(cfg *config.ServerConfig, h Handlers, sessions middleware.SessionStore, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// importing docs registers the OpenAPI document through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	webStaticPath := findWebStaticPath(appLogger)
	if webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
	} else {
		appLogger.Warn("Web static directory not found, static files will not be served")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		if webStaticPath == "" {
			return c.Status(fiber.StatusNotFound).SendString("Web interface not found. Please ensure web/static/index.html exists.")
		}
		return c.SendFile(filepath.Join(webStaticPath, "index.html"))
	})

	api := app.Group("/api/v1")
	api.Get("/help", h.Help.Help)
	api.Get("/options", h.Help.Options)

	withSession := middleware.SessionMiddleware(sessions, appLogger)

	sessionRoutes := api.Group("/sessions")
	sessionRoutes.Post("", h.Session.CreateSession)
	sessionRoutes.Get("/:id", withSession, h.Session.GetSession)
	sessionRoutes.Delete("/:id", withSession, h.Session.EndSession)
	sessionRoutes.Post("/:id/start", withSession, h.Session.Start)
	sessionRoutes.Post("/:id/reset", withSession, h.Session.Reset)

	// Questionnaire
	sessionRoutes.Put("/:id/questionnaire/steps/:step", withSession, h.Questionnaire.UpdateStep)
	sessionRoutes.Post("/:id/questionnaire/next", withSession, h.Questionnaire.Next)
	sessionRoutes.Post("/:id/questionnaire/back", withSession, h.Questionnaire.Back)
	sessionRoutes.Post("/:id/questionnaire/submit", withSession, h.Questionnaire.Submit)

	// Results
	sessionRoutes.Get("/:id/recommendations", withSession, h.Results.ListRecommendations)
	sessionRoutes.Get("/:id/recommendations/:recId", withSession, h.Results.GetRecommendation)
	sessionRoutes.Post("/:id/recommendations/:recId/select", withSession, h.Results.SelectRecommendation)
	sessionRoutes.Get("/:id/recommendations/:recId/question", withSession, h.Results.SuggestedQuestion)

	// Advisor chat
	sessionRoutes.Get("/:id/chat", withSession, h.Chat.History)
	sessionRoutes.Post("/:id/chat", withSession, h.Chat.Send)

	return app
}

// findWebStaticPath looks for web/static relative to the working directory
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			logger.Debug("Found web static path", zap.String("path", path))
			return path
		}
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
