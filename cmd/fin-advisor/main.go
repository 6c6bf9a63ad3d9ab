package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fin-advisor/internal/api"
	"fin-advisor/internal/api/handlers"
	"fin-advisor/internal/repository"
	"fin-advisor/internal/service"
	"fin-advisor/pkg/config"
	"fin-advisor/pkg/logger"
	"fin-advisor/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting financial advisor service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	profileRepo := repository.NewProfileRepository(db, appLogger)
	interactionRepo := repository.NewInteractionRepository(db, appLogger)

	// Initialize providers
	embedder := service.NewOpenAIEmbedder(&cfg.Embeddings, appLogger)
	completer := service.NewClaudeCompleter(&cfg.Anthropic, appLogger)

	// Initialize the knowledge store and its index
	index := service.NewEmbeddingIndex(embedder, appLogger)
	knowledgeStore := service.NewKnowledgeStore(knowledgeRepo, index, appLogger)
	if err := knowledgeStore.Initialize(ctx); err != nil {
		appLogger.Fatal("Failed to initialize knowledge store", zap.Error(err))
	}

	// Initialize services
	interactionLog := service.NewInteractionLog(interactionRepo, cfg.RAG.InteractionTimeout, appLogger)
	advisorService := service.NewAdvisorService(
		index,
		profileRepo,
		completer,
		interactionLog,
		cfg.RAG.TopK,
		cfg.Anthropic.MaxTokens,
		cfg.Anthropic.Temperature,
		appLogger,
	)
	profileService := service.NewProfileService(profileRepo, appLogger)

	// Initialize handlers
	adviceHandler := handlers.NewAdviceHandler(advisorService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeStore, appLogger)
	profileHandler := handlers.NewProfileHandler(profileService, appLogger)

	// Setup router
	app := api.SetupRouter(adviceHandler, knowledgeHandler, profileHandler)

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

	// Drain pending interaction writes before the pool closes
	interactionLog.Flush()
}
