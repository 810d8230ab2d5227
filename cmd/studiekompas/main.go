package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studiekompas/internal/api"
	"studiekompas/internal/api/handlers"
	"studiekompas/internal/repository"
	"studiekompas/internal/service"
	"studiekompas/pkg/config"
	"studiekompas/pkg/logger"
	"studiekompas/pkg/tracing"

	"go.uber.org/zap"
)

// @title StudieKompas API
// @version 1.0
// @description Studiekeuze-advies voor eindexamenleerlingen: profielvragenlijst, AI-aanbevelingen en een studiecoach-chat

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level, cfg.Tracing.ServiceName); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting StudieKompas service", zap.String("ai_provider", cfg.AI.Provider))

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, &cfg.Tracing, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.Warn("Tracing shutdown error", zap.Error(err))
		}
	}()

	provider, closeProvider, err := newProvider(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}
	defer closeProvider()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval, appLogger)

	// Initialize services
	recService := service.NewRecommendationService(provider, cfg.Recommendation.Count, appLogger)
	flowService := service.NewFlowService(sessionRepo, service.NewQuestionnaire(), recService, cfg.AI.Timeout, appLogger)
	resultsService := service.NewResultsService(appLogger)
	chatService := service.NewChatService(provider, cfg.AI.Timeout, appLogger)

	// Setup router
	app := api.SetupRouter(&cfg.Server, api.Handlers{
		Help:          handlers.NewHelpHandler(),
		Session:       handlers.NewSessionHandler(flowService, appLogger),
		Questionnaire: handlers.NewQuestionnaireHandler(flowService, appLogger),
		Results:       handlers.NewResultsHandler(resultsService, appLogger),
		Chat:          handlers.NewChatHandler(chatService, appLogger),
	}, sessionRepo, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

func newProvider(ctx context.Context, cfg *config.Config, log *zap.Logger) (service.AIProvider, func(), error) {
	switch cfg.AI.Provider {
	case config.ProviderGigaChat:
		p, err := service.NewGigaChatProvider(ctx, &cfg.GigaChat, log)
		if err != nil {
			return nil, nil, err
		}
		return p, func() { _ = p.Close() }, nil
	default:
		p, err := service.NewGeminiProvider(ctx, &cfg.Gemini, log)
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	}
}
