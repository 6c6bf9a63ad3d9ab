package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fin-advisor/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KnowledgeStore owns the canonical set of knowledge documents and keeps the
// in-memory embedding index in sync with newly added ones. Updates and
// deletes are applied to durable storage only; the running index picks them
// up on the next restart.
type KnowledgeStore struct {
	repo   KnowledgeRepository
	index  *EmbeddingIndex
	seed   []models.SeedDocument
	logger *zap.Logger

	mu          sync.Mutex
	initialized bool
}

func NewKnowledgeStore(repo KnowledgeRepository, index *EmbeddingIndex, logger *zap.Logger) *KnowledgeStore {
	return &KnowledgeStore{
		repo:   repo,
		index:  index,
		seed:   models.SeedKnowledge,
		logger: logger,
	}
}

// Initialize loads the knowledge base from durable storage and builds the
// index, seeding the bundled corpus when storage is empty or unreachable.
// It is idempotent: once a pass succeeds, later calls return immediately.
// A failed pass leaves the store uninitialized so the next call retries.
func (s *KnowledgeStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	docs, err := s.repo.ListAll(ctx)
	if err != nil {
		// A load failure is treated like an empty store: fall back to the
		// bundled corpus.
		s.logger.Warn("Failed to load knowledge base, seeding built-in corpus", zap.Error(err))
		docs = nil
	}

	if len(docs) == 0 {
		docs, err = s.seedCorpus(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed knowledge base: %w", err)
		}
		s.logger.Info("Knowledge base seeded", zap.Int("documents", len(docs)))
	} else {
		s.logger.Info("Knowledge base loaded", zap.Int("documents", len(docs)))
	}

	if err := s.index.Build(ctx, docs); err != nil {
		return fmt.Errorf("failed to build embedding index: %w", err)
	}

	s.initialized = true
	return nil
}

func (s *KnowledgeStore) seedCorpus(ctx context.Context) ([]*models.KnowledgeDocument, error) {
	now := time.Now().UTC()
	docs := make([]*models.KnowledgeDocument, 0, len(s.seed))
	for _, entry := range s.seed {
		doc := &models.KnowledgeDocument{
			ID:        uuid.New(),
			Content:   entry.Content,
			Metadata:  entry.Metadata,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Create(ctx, doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// AddDocument persists a new knowledge document and makes it searchable
// immediately. Persistence failures propagate to the caller.
func (s *KnowledgeStore) AddDocument(ctx context.Context, content string, metadata models.DocumentMetadata) (*models.KnowledgeDocument, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.ErrEmptyContent
	}

	now := time.Now().UTC()
	doc := &models.KnowledgeDocument{
		ID:        uuid.New(),
		Content:   content,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to persist knowledge document: %w", err)
	}

	if err := s.index.Add(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to index knowledge document: %w", err)
	}

	// Store the computed vector so the next startup skips re-embedding.
	if err := s.repo.UpdateEmbedding(ctx, doc.ID, doc.Embedding); err != nil {
		s.logger.Warn("Failed to persist document embedding", zap.String("id", doc.ID.String()), zap.Error(err))
	}

	s.logger.Info("Knowledge document added",
		zap.String("id", doc.ID.String()),
		zap.String("category", doc.Metadata.Category),
	)

	return doc, nil
}

// List returns knowledge documents filtered by optional category and
// priority, newest first.
func (s *KnowledgeStore) List(ctx context.Context, category, priority string) ([]*models.KnowledgeDocument, error) {
	return s.repo.List(ctx, category, priority)
}

// KnowledgeUpdate carries the partial-update fields for a knowledge
// document. Zero values leave the corresponding field unchanged.
type KnowledgeUpdate struct {
	Content  string
	Metadata *models.DocumentMetadata
	Category string
	Priority models.Priority
}

// Update applies a partial update to a stored document.
func (s *KnowledgeStore) Update(ctx context.Context, id uuid.UUID, update KnowledgeUpdate) (*models.KnowledgeDocument, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Content != "" {
		doc.Content = update.Content
	}
	if update.Metadata != nil {
		doc.Metadata = doc.Metadata.Overlay(*update.Metadata)
	}
	if update.Category != "" {
		doc.Metadata.Category = update.Category
	}
	if update.Priority != "" {
		doc.Metadata.Priority = update.Priority
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Delete removes a document from durable storage.
func (s *KnowledgeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
