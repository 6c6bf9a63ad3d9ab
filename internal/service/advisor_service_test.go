package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fin-advisor/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type advisorFixture struct {
	advisor      *AdvisorService
	index        *EmbeddingIndex
	profiles     *fakeProfileRepo
	completer    *fakeCompleter
	interactions *fakeInteractionRepo
	log          *InteractionLog
}

func newAdvisorFixture(t *testing.T, embedder Embedder, docs []*models.KnowledgeDocument) *advisorFixture {
	t.Helper()

	index := NewEmbeddingIndex(embedder, zap.NewNop())
	if len(docs) > 0 {
		require.NoError(t, index.Build(context.Background(), docs))
	}

	profiles := newFakeProfileRepo()
	completer := &fakeCompleter{}
	interactions := &fakeInteractionRepo{}
	log := NewInteractionLog(interactions, time.Second, zap.NewNop())

	advisor := NewAdvisorService(index, profiles, completer, log, 5, 500, 0.7, zap.NewNop())
	return &advisorFixture{
		advisor:      advisor,
		index:        index,
		profiles:     profiles,
		completer:    completer,
		interactions: interactions,
		log:          log,
	}
}

func knowledgeDoc(content string, metadata models.DocumentMetadata) *models.KnowledgeDocument {
	return &models.KnowledgeDocument{
		ID:       uuid.New(),
		Content:  content,
		Metadata: metadata,
	}
}

func TestGenerateAdvice_ReturnsAdviceWithSources(t *testing.T) {
	docs := []*models.KnowledgeDocument{
		knowledgeDoc("Pay credit card balances in full each month.", models.DocumentMetadata{
			Category: "credit",
			Priority: models.PriorityHigh,
		}),
		knowledgeDoc("Track deductible expenses through the year.", models.DocumentMetadata{
			Category: "taxes",
			Priority: models.PriorityMedium,
		}),
	}
	f := newAdvisorFixture(t, &fakeEmbedder{}, docs)

	resp, err := f.advisor.GenerateAdvice(context.Background(), "user-1", "How do I build credit?", models.UserContext{})

	require.NoError(t, err)
	assert.Equal(t, "Here is some financial advice.", resp.Advice)
	require.Len(t, resp.Sources, 2)
	for _, source := range resp.Sources {
		assert.NotEmpty(t, source.Content)
		assert.NotEmpty(t, source.Category)
		assert.GreaterOrEqual(t, source.RelevanceScore, 0.5)
		assert.LessOrEqual(t, source.RelevanceScore, 1.0)
	}
}

func TestGenerateAdvice_RecordsInteraction(t *testing.T) {
	docs := []*models.KnowledgeDocument{
		knowledgeDoc("Build an emergency fund first.", models.DocumentMetadata{Category: "emergency_fund"}),
	}
	f := newAdvisorFixture(t, &fakeEmbedder{}, docs)

	_, err := f.advisor.GenerateAdvice(context.Background(), "user-7", "Where do I start?", models.UserContext{})
	require.NoError(t, err)

	f.log.Flush()
	require.Equal(t, 1, f.interactions.count())

	recorded := f.interactions.interactions[0]
	assert.Equal(t, "user-7", recorded.UserID)
	assert.Equal(t, "Where do I start?", recorded.Query)
	assert.Contains(t, recorded.ID, "user-7_")
	assert.Len(t, recorded.Sources, 1)
}

func TestGenerateAdvice_CompleterFailurePropagates(t *testing.T) {
	docs := []*models.KnowledgeDocument{
		knowledgeDoc("Some fact.", models.DocumentMetadata{Category: "banking"}),
	}
	f := newAdvisorFixture(t, &fakeEmbedder{}, docs)
	f.completer.completeFn = func(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float64) (string, error) {
		return "", errors.New("model overloaded")
	}

	_, err := f.advisor.GenerateAdvice(context.Background(), "user-1", "help", models.UserContext{})

	require.Error(t, err)
	f.log.Flush()
	assert.Zero(t, f.interactions.count(), "failed exchanges must not be recorded")
}

func TestGenerateAdvice_RetrievalFailureDegradesToNoSources(t *testing.T) {
	embedder := &fakeEmbedder{}
	docs := []*models.KnowledgeDocument{
		knowledgeDoc("Some fact.", models.DocumentMetadata{Category: "banking"}),
	}
	f := newAdvisorFixture(t, embedder, docs)

	// Index is built; subsequent query embeddings fail.
	embedder.embedFn = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("provider down")
	}

	resp, err := f.advisor.GenerateAdvice(context.Background(), "user-1", "help", models.UserContext{})

	require.NoError(t, err)
	assert.Equal(t, "Here is some financial advice.", resp.Advice)
	assert.Empty(t, resp.Sources)
}

func TestGenerateAdvice_EmptyKnowledgeBase(t *testing.T) {
	f := newAdvisorFixture(t, &fakeEmbedder{}, nil)

	resp, err := f.advisor.GenerateAdvice(context.Background(), "user-1", "help", models.UserContext{})

	require.NoError(t, err)
	assert.Empty(t, resp.Sources)
	assert.Contains(t, f.completer.lastSystemPrompt, "No specific user context provided")
}

func TestGenerateAdvice_VisaMatchScoresHighest(t *testing.T) {
	h1b := knowledgeDoc("H-1B holders should keep pay stubs for status renewals.", models.DocumentMetadata{
		Category: "credit",
		Priority: models.PriorityHigh,
		VisaType: "H-1B",
	})
	f1 := knowledgeDoc("F-1 students can open accounts with a passport and I-20.", models.DocumentMetadata{
		Category: "credit",
		Priority: models.PriorityHigh,
		VisaType: "F-1",
	})
	green := knowledgeDoc("Green card holders qualify for most mainstream credit products.", models.DocumentMetadata{
		Category: "credit",
		Priority: models.PriorityHigh,
		VisaType: "green_card",
	})
	f := newAdvisorFixture(t, &fakeEmbedder{}, []*models.KnowledgeDocument{h1b, f1, green})

	resp, err := f.advisor.GenerateAdvice(context.Background(), "user-1", "credit advice", models.UserContext{VisaStatus: "H-1B"})
	require.NoError(t, err)
	require.Len(t, resp.Sources, 3)

	scores := make(map[string]float64, 3)
	for _, source := range resp.Sources {
		scores[source.Content] = source.RelevanceScore
	}

	assert.InDelta(t, 1.0, scores[h1b.Content], 1e-9)
	assert.InDelta(t, 0.8, scores[f1.Content], 1e-9)
	assert.InDelta(t, 0.8, scores[green.Content], 1e-9)
}

func TestGenerateAdvice_MergesStoredProfileWithOverrides(t *testing.T) {
	f := newAdvisorFixture(t, &fakeEmbedder{}, nil)
	require.NoError(t, f.profiles.Upsert(context.Background(), &models.UserProfile{
		ID: "user-1",
		UserContext: models.UserContext{
			VisaStatus: "H-1B",
			Region:     "Texas",
			Language:   "es",
		},
	}))

	resp, err := f.advisor.GenerateAdvice(context.Background(), "user-1", "help", models.UserContext{
		Region: "California",
	})

	require.NoError(t, err)
	assert.Equal(t, "H-1B", resp.UserContext.VisaStatus)
	assert.Equal(t, "California", resp.UserContext.Region, "request override wins")
	assert.Equal(t, "es", resp.UserContext.Language)

	assert.Contains(t, f.completer.lastSystemPrompt, "Visa Status: H-1B")
	assert.Contains(t, f.completer.lastSystemPrompt, "Region: California")
}

func TestGenerateAdvice_RetrievedContentAppearsInPrompt(t *testing.T) {
	doc := knowledgeDoc("Open a secured credit card to start a credit history.", models.DocumentMetadata{Category: "credit"})
	f := newAdvisorFixture(t, &fakeEmbedder{}, []*models.KnowledgeDocument{doc})

	_, err := f.advisor.GenerateAdvice(context.Background(), "user-1", "How do I start?", models.UserContext{})
	require.NoError(t, err)

	assert.Contains(t, f.completer.lastSystemPrompt, "- "+doc.Content)
	assert.Equal(t, "How do I start?", f.completer.lastUserMessage)
}

func TestGenerateAdviceByType_CannedQuestions(t *testing.T) {
	cases := map[string]string{
		AdviceTypeSavings:    "How can I improve my savings strategy?",
		AdviceTypeInvestment: "What are good investment options for my situation?",
		AdviceTypeCredit:     "How can I build or improve my credit score?",
		AdviceTypeTaxes:      "What should I know about taxes and tax planning?",
		AdviceTypeGoals:      "How can I achieve my financial goals more effectively?",
		"general":            "What financial advice do you have for my situation?",
		"unknown":            "What financial advice do you have for my situation?",
	}

	for adviceType, question := range cases {
		f := newAdvisorFixture(t, &fakeEmbedder{}, nil)

		_, err := f.advisor.GenerateAdviceByType(context.Background(), "user-1", adviceType)
		require.NoError(t, err)
		assert.Equal(t, question, f.completer.lastUserMessage, "type %q", adviceType)
	}
}

func TestBuildProfileSummary_FixedOrder(t *testing.T) {
	summary := BuildProfileSummary(models.UserContext{
		VisaStatus: "F-1",
		IncomeType: "gig",
		Region:     "New York",
		Language:   "pt",
		Goals:      []string{"emergency fund", "buy a home"},
	})

	assert.Equal(t,
		"Visa Status: F-1\nIncome Type: gig\nRegion: New York\nPreferred Language: pt\nFinancial Goals: emergency fund, buy a home",
		summary,
	)
}

func TestBuildProfileSummary_Empty(t *testing.T) {
	assert.Equal(t, "No specific user context provided", BuildProfileSummary(models.UserContext{}))
}

func TestBuildProfileSummary_SingleField(t *testing.T) {
	summary := BuildProfileSummary(models.UserContext{Goals: []string{"retire early"}})
	assert.Equal(t, "Financial Goals: retire early", summary)
}
