package service

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"fin-advisor/internal/models"

	"github.com/google/uuid"
)

// fakeEmbedder returns deterministic vectors. Identical texts always map to
// identical vectors; unrelated texts land on different pseudo-random ones.
// Safe for concurrent use, like the real provider client.
type fakeEmbedder struct {
	embedFn func(ctx context.Context, text string) ([]float32, error)
	calls   atomic.Int64
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls.Add(1)
	if f.embedFn != nil {
		return f.embedFn(ctx, text)
	}
	return hashVector(text), nil
}

func hashVector(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	vec := make([]float32, 8)
	for i := range vec {
		seed = seed*6364136223846793005 + 1442695040888963407
		vec[i] = float32(int64(seed>>33)) / float32(1<<31)
	}
	return vec
}

type fakeCompleter struct {
	completeFn func(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float64) (string, error)

	lastSystemPrompt string
	lastUserMessage  string
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float64) (string, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastUserMessage = userMessage
	if f.completeFn != nil {
		return f.completeFn(ctx, systemPrompt, userMessage, maxTokens, temperature)
	}
	return "Here is some financial advice.", nil
}

// fakeKnowledgeRepo is an in-memory KnowledgeRepository with overridable
// behavior per call.
type fakeKnowledgeRepo struct {
	mu   sync.Mutex
	docs []*models.KnowledgeDocument

	createFn  func(ctx context.Context, doc *models.KnowledgeDocument) error
	listAllFn func(ctx context.Context) ([]*models.KnowledgeDocument, error)
}

func newFakeKnowledgeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{}
}

func (f *fakeKnowledgeRepo) Create(ctx context.Context, doc *models.KnowledgeDocument) error {
	if f.createFn != nil {
		return f.createFn(ctx, doc)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *doc
	f.docs = append(f.docs, &copied)
	return nil
}

func (f *fakeKnowledgeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.docs {
		if doc.ID == id {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeKnowledgeRepo) List(ctx context.Context, category, priority string) ([]*models.KnowledgeDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.KnowledgeDocument
	for i := len(f.docs) - 1; i >= 0; i-- {
		doc := f.docs[i]
		if category != "" && doc.Metadata.Category != category {
			continue
		}
		if priority != "" && string(doc.Metadata.Priority) != priority {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeKnowledgeRepo) ListAll(ctx context.Context) ([]*models.KnowledgeDocument, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.KnowledgeDocument, len(f.docs))
	copy(out, f.docs)
	return out, nil
}

func (f *fakeKnowledgeRepo) Update(ctx context.Context, doc *models.KnowledgeDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.docs {
		if existing.ID == doc.ID {
			copied := *doc
			f.docs[i] = &copied
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeKnowledgeRepo) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.docs {
		if doc.ID == id {
			doc.Embedding = embedding
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeKnowledgeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, doc := range f.docs {
		if doc.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeKnowledgeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.UserProfile)}
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *models.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *profile
	f.profiles[profile.ID] = &copied
	return nil
}

type fakeInteractionRepo struct {
	mu           sync.Mutex
	interactions []*models.Interaction

	createFn func(ctx context.Context, interaction *models.Interaction) error
}

func (f *fakeInteractionRepo) Create(ctx context.Context, interaction *models.Interaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, interaction)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interactions = append(f.interactions, interaction)
	return nil
}

func (f *fakeInteractionRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.interactions)
}
