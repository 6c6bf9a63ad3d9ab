package service

import (
	"testing"

	"fin-advisor/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFilter_RetainsEverythingInOrder(t *testing.T) {
	ranker := NewRelevanceRanker()

	docs := []*models.KnowledgeDocument{
		{Content: "a", Metadata: models.DocumentMetadata{Priority: models.PriorityLow}},
		{Content: "b", Metadata: models.DocumentMetadata{VisaType: "H-1B"}},
		{Content: "c", Metadata: models.DocumentMetadata{}},
	}

	retained := ranker.Filter(docs, models.UserContext{VisaStatus: "F-1"})

	assert.Len(t, retained, len(docs))
	for i := range docs {
		assert.Same(t, docs[i], retained[i])
	}
}

func TestScore_BaseOnly(t *testing.T) {
	ranker := NewRelevanceRanker()

	doc := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{Priority: models.PriorityLow}}
	assert.InDelta(t, 0.5, ranker.Score(doc, models.UserContext{}), 1e-9)
}

func TestScore_PriorityBoosts(t *testing.T) {
	ranker := NewRelevanceRanker()

	high := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{Priority: models.PriorityHigh}}
	medium := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{Priority: models.PriorityMedium}}
	low := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{Priority: models.PriorityLow}}

	assert.InDelta(t, 0.8, ranker.Score(high, models.UserContext{}), 1e-9)
	assert.InDelta(t, 0.6, ranker.Score(medium, models.UserContext{}), 1e-9)
	assert.InDelta(t, 0.5, ranker.Score(low, models.UserContext{}), 1e-9)
}

func TestScore_VisaMatchRequiresUserVisa(t *testing.T) {
	ranker := NewRelevanceRanker()

	doc := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{VisaType: "H-1B"}}

	assert.InDelta(t, 0.7, ranker.Score(doc, models.UserContext{VisaStatus: "H-1B"}), 1e-9)
	assert.InDelta(t, 0.5, ranker.Score(doc, models.UserContext{VisaStatus: "F-1"}), 1e-9)
	assert.InDelta(t, 0.5, ranker.Score(doc, models.UserContext{}), 1e-9)
}

func TestScore_GigWorkerMatch(t *testing.T) {
	ranker := NewRelevanceRanker()

	doc := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{WorkerType: "gig"}}

	assert.InDelta(t, 0.7, ranker.Score(doc, models.UserContext{IncomeType: "gig"}), 1e-9)
	assert.InDelta(t, 0.5, ranker.Score(doc, models.UserContext{IncomeType: "salaried"}), 1e-9)
}

func TestScore_ImmigrantFocusAlwaysApplies(t *testing.T) {
	ranker := NewRelevanceRanker()

	doc := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{TargetAudience: "immigrants"}}
	assert.InDelta(t, 0.6, ranker.Score(doc, models.UserContext{}), 1e-9)
}

func TestScore_ClampedAtOne(t *testing.T) {
	ranker := NewRelevanceRanker()

	doc := &models.KnowledgeDocument{Metadata: models.DocumentMetadata{
		Priority:       models.PriorityHigh,
		VisaType:       "H-1B",
		WorkerType:     "gig",
		TargetAudience: "immigrants",
	}}
	userContext := models.UserContext{VisaStatus: "H-1B", IncomeType: "gig"}

	// 0.5 + 0.3 + 0.2 + 0.2 + 0.1 = 1.3 before clamping.
	assert.InDelta(t, 1.0, ranker.Score(doc, userContext), 1e-9)
}
