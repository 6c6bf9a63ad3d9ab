package service

import "fin-advisor/internal/models"

// Relevance scoring weights. The base plus all boosts can exceed 1.0, so the
// final score is clamped.
const (
	scoreBase           = 0.5
	scoreHighPriority   = 0.3
	scoreMediumPriority = 0.1
	scoreVisaMatch      = 0.2
	scoreWorkerMatch    = 0.2
	scoreImmigrantFocus = 0.1
	scoreMax            = 1.0
)

// RelevanceRanker scores retrieved documents against a user's context and
// decides which candidates are retained for prompt assembly.
type RelevanceRanker struct{}

func NewRelevanceRanker() *RelevanceRanker {
	return &RelevanceRanker{}
}

// Filter runs each candidate through the retention predicates and returns
// the retained set in input order. Every predicate currently retains the
// document, so the output equals the input; the predicates are kept as named
// checks so individual ones can be turned into hard exclusions later without
// restructuring the pipeline.
func (r *RelevanceRanker) Filter(docs []*models.KnowledgeDocument, userContext models.UserContext) []*models.KnowledgeDocument {
	retained := make([]*models.KnowledgeDocument, 0, len(docs))
	for _, doc := range docs {
		if r.retain(doc, userContext) {
			retained = append(retained, doc)
		}
	}
	return retained
}

func (r *RelevanceRanker) retain(doc *models.KnowledgeDocument, userContext models.UserContext) bool {
	metadata := doc.Metadata

	if userContext.VisaStatus != "" && metadata.VisaType == userContext.VisaStatus {
		return true
	}
	if userContext.IncomeType == "gig" && metadata.WorkerType == "gig" {
		return true
	}
	if metadata.Priority == models.PriorityHigh {
		return true
	}
	if metadata.TargetAudience == "immigrants" {
		return true
	}

	// Documents matching none of the targeted predicates are retained too.
	return true
}

// Score computes the deterministic additive relevance score in [0, 1].
func (r *RelevanceRanker) Score(doc *models.KnowledgeDocument, userContext models.UserContext) float64 {
	score := scoreBase
	metadata := doc.Metadata

	switch metadata.Priority {
	case models.PriorityHigh:
		score += scoreHighPriority
	case models.PriorityMedium:
		score += scoreMediumPriority
	}

	if userContext.VisaStatus != "" && metadata.VisaType == userContext.VisaStatus {
		score += scoreVisaMatch
	}
	if userContext.IncomeType == "gig" && metadata.WorkerType == "gig" {
		score += scoreWorkerMatch
	}
	if metadata.TargetAudience == "immigrants" {
		score += scoreImmigrantFocus
	}

	if score > scoreMax {
		score = scoreMax
	}
	return score
}
