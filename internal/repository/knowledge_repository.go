package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fin-advisor/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

var knowledgeColumns = []string{"id", "content", "metadata", "embedding", "created_at", "updated_at"}

func (r *KnowledgeRepository) Create(ctx context.Context, doc *models.KnowledgeDocument) error {
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := squirrel.Insert("knowledge_documents").
		Columns(knowledgeColumns...).
		Values(doc.ID, doc.Content, metadataJSON, embeddingValue(doc.Embedding), doc.CreatedAt, doc.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *KnowledgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeDocument, error) {
	query := squirrel.Select(knowledgeColumns...).
		From("knowledge_documents").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	doc, err := scanKnowledgeRow(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return doc, err
}

// List returns documents matching the optional category/priority filters,
// newest first.
func (r *KnowledgeRepository) List(ctx context.Context, category, priority string) ([]*models.KnowledgeDocument, error) {
	query := squirrel.Select(knowledgeColumns...).
		From("knowledge_documents").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		query = query.Where(squirrel.Eq{"metadata->>'category'": category})
	}
	if priority != "" {
		query = query.Where(squirrel.Eq{"metadata->>'priority'": priority})
	}

	return r.queryDocuments(ctx, query)
}

// ListAll returns the full knowledge base in insertion order. Used to build
// the in-memory index at startup.
func (r *KnowledgeRepository) ListAll(ctx context.Context) ([]*models.KnowledgeDocument, error) {
	query := squirrel.Select(knowledgeColumns...).
		From("knowledge_documents").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryDocuments(ctx, query)
}

func (r *KnowledgeRepository) Update(ctx context.Context, doc *models.KnowledgeDocument) error {
	metadataJSON, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := squirrel.Update("knowledge_documents").
		Set("content", doc.Content).
		Set("metadata", metadataJSON).
		Set("updated_at", doc.UpdatedAt).
		Where(squirrel.Eq{"id": doc.ID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.execExpectingRow(ctx, query)
}

// UpdateEmbedding stores the computed vector for a document so later runs
// can rebuild the index without calling the embedding provider again.
func (r *KnowledgeRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	query := squirrel.Update("knowledge_documents").
		Set("embedding", embeddingValue(embedding)).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.execExpectingRow(ctx, query)
}

func (r *KnowledgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("knowledge_documents").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *KnowledgeRepository) execExpectingRow(ctx context.Context, query squirrel.UpdateBuilder) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *KnowledgeRepository) queryDocuments(ctx context.Context, query squirrel.SelectBuilder) ([]*models.KnowledgeDocument, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.KnowledgeDocument
	for rows.Next() {
		doc, err := scanKnowledgeRow(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKnowledgeRow(row rowScanner) (*models.KnowledgeDocument, error) {
	var (
		doc          models.KnowledgeDocument
		metadataJSON []byte
		embedding    *pgvector.Vector
	)

	if err := row.Scan(&doc.ID, &doc.Content, &metadataJSON, &embedding, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &doc.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	if embedding != nil {
		doc.Embedding = embedding.Slice()
	}

	return &doc, nil
}

// embeddingValue converts a raw vector to its pgvector column value. The
// column stays NULL until an embedding has been computed.
func embeddingValue(embedding []float32) any {
	if len(embedding) == 0 {
		return nil
	}
	return pgvector.NewVector(embedding)
}
