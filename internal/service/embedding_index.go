package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"fin-advisor/internal/models"

	"go.uber.org/zap"
)

// EmbeddingIndex is an in-memory nearest-neighbor index over the knowledge
// base. Entries are append-only: Add publishes a fully built entry under the
// write lock, so concurrent Search calls either see the whole entry or not
// at all.
type EmbeddingIndex struct {
	mu       sync.RWMutex
	entries  []indexEntry
	embedder Embedder
	logger   *zap.Logger
}

type indexEntry struct {
	doc    *models.KnowledgeDocument
	vector []float32
}

func NewEmbeddingIndex(embedder Embedder, logger *zap.Logger) *EmbeddingIndex {
	return &EmbeddingIndex{
		embedder: embedder,
		logger:   logger,
	}
}

// Build replaces the index contents with the given documents. Vectors
// already present on a document (loaded from storage) are reused; the rest
// are computed through the embedding provider.
func (ix *EmbeddingIndex) Build(ctx context.Context, docs []*models.KnowledgeDocument) error {
	entries := make([]indexEntry, 0, len(docs))
	for _, doc := range docs {
		vector := doc.Embedding
		if len(vector) == 0 {
			var err error
			vector, err = ix.embedder.Embed(ctx, doc.Content)
			if err != nil {
				return fmt.Errorf("failed to embed document %s: %w", doc.ID, err)
			}
			doc.Embedding = vector
		}
		entries = append(entries, indexEntry{doc: doc, vector: vector})
	}

	ix.mu.Lock()
	ix.entries = entries
	ix.mu.Unlock()

	ix.logger.Info("Embedding index built", zap.Int("documents", len(entries)))
	return nil
}

// Add incorporates one new document without rebuilding. The embedding is
// computed before the entry is published, and the document's Embedding field
// is filled in as a side effect.
func (ix *EmbeddingIndex) Add(ctx context.Context, doc *models.KnowledgeDocument) error {
	vector := doc.Embedding
	if len(vector) == 0 {
		var err error
		vector, err = ix.embedder.Embed(ctx, doc.Content)
		if err != nil {
			return fmt.Errorf("failed to embed document %s: %w", doc.ID, err)
		}
		doc.Embedding = vector
	}

	ix.mu.Lock()
	ix.entries = append(ix.entries, indexEntry{doc: doc, vector: vector})
	ix.mu.Unlock()

	return nil
}

// Search returns up to k documents ranked by cosine similarity to the query,
// most similar first. Ties keep insertion order. An empty index yields an
// empty result without touching the embedding provider.
func (ix *EmbeddingIndex) Search(ctx context.Context, query string, k int) ([]*models.KnowledgeDocument, error) {
	ix.mu.RLock()
	snapshot := ix.entries
	ix.mu.RUnlock()

	if len(snapshot) == 0 || k <= 0 {
		return nil, nil
	}

	queryVector, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	type scored struct {
		doc        *models.KnowledgeDocument
		similarity float64
	}
	results := make([]scored, len(snapshot))
	for i, entry := range snapshot {
		results[i] = scored{doc: entry.doc, similarity: cosineSimilarity(queryVector, entry.vector)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].similarity > results[j].similarity
	})

	if k > len(results) {
		k = len(results)
	}
	docs := make([]*models.KnowledgeDocument, k)
	for i := 0; i < k; i++ {
		docs[i] = results[i].doc
	}
	return docs, nil
}

// Len reports the number of indexed documents.
func (ix *EmbeddingIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
