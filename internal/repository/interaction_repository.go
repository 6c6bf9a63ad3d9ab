package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fin-advisor/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type InteractionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInteractionRepository(db *pgxpool.Pool, logger *zap.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	sourcesJSON, err := json.Marshal(interaction.Sources)
	if err != nil {
		return fmt.Errorf("failed to marshal sources: %w", err)
	}
	contextJSON, err := json.Marshal(interaction.UserContext)
	if err != nil {
		return fmt.Errorf("failed to marshal user context: %w", err)
	}

	query := squirrel.Insert("ai_interactions").
		Columns("id", "user_id", "query", "response", "sources", "user_context", "created_at").
		Values(interaction.ID, interaction.UserID, interaction.Query, interaction.Response, sourcesJSON, contextJSON, interaction.Timestamp).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
