package main

import (
	"context"
	"log"
	"time"

	"fin-advisor/internal/models"
	"fin-advisor/internal/repository"
	"fin-advisor/internal/service"
	"fin-advisor/pkg/config"
	"fin-advisor/pkg/logger"
	"fin-advisor/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds the knowledge base with the bundled corpus and precomputes
// embeddings so the service starts without calling the embedding provider
// for every document.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	embedder := service.NewOpenAIEmbedder(&cfg.Embeddings, appLogger)

	appLogger.Info("Starting knowledge base seeding...")

	existing, err := knowledgeRepo.ListAll(ctx)
	if err != nil {
		appLogger.Fatal("Failed to read knowledge base", zap.Error(err))
	}
	if len(existing) > 0 {
		appLogger.Info("Knowledge base already seeded, nothing to do",
			zap.Int("documents", len(existing)),
		)
		return
	}

	now := time.Now().UTC()
	seeded := 0
	for _, entry := range models.SeedKnowledge {
		doc := &models.KnowledgeDocument{
			ID:        uuid.New(),
			Content:   entry.Content,
			Metadata:  entry.Metadata,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// Precompute the embedding; a provider failure is not fatal, the
		// service will fill the vector in at startup.
		embedding, err := embedder.Embed(ctx, doc.Content)
		if err != nil {
			appLogger.Warn("Failed to embed seed document, storing without vector",
				zap.String("category", doc.Metadata.Category),
				zap.Error(err),
			)
		} else {
			doc.Embedding = embedding
		}

		if err := knowledgeRepo.Create(ctx, doc); err != nil {
			appLogger.Fatal("Failed to store seed document",
				zap.String("category", doc.Metadata.Category),
				zap.Error(err),
			)
		}
		seeded++
	}

	appLogger.Info("Knowledge base seeding completed", zap.Int("documents", seeded))
}
