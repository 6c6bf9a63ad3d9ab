package service

import (
	"context"

	"fin-advisor/internal/models"

	"github.com/google/uuid"
)

// Storage capabilities consumed by the services. The concrete
// implementations live in internal/repository; tests substitute in-memory
// fakes.

type KnowledgeRepository interface {
	Create(ctx context.Context, doc *models.KnowledgeDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeDocument, error)
	List(ctx context.Context, category, priority string) ([]*models.KnowledgeDocument, error)
	ListAll(ctx context.Context) ([]*models.KnowledgeDocument, error)
	Update(ctx context.Context, doc *models.KnowledgeDocument) error
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
}
