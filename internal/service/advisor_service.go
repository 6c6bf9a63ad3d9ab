package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fin-advisor/internal/dto"
	"fin-advisor/internal/models"

	"go.uber.org/zap"
)

// RetrievedDocument pairs a knowledge document with its relevance score for
// the duration of one advice-generation call.
type RetrievedDocument struct {
	Document       *models.KnowledgeDocument
	RelevanceScore float64
}

// AdviceType names for the canned-question GET flow.
const (
	AdviceTypeSavings    = "savings"
	AdviceTypeInvestment = "investment"
	AdviceTypeCredit     = "credit"
	AdviceTypeTaxes      = "taxes"
	AdviceTypeGoals      = "goals"
)

var adviceQuestions = map[string]string{
	AdviceTypeSavings:    "How can I improve my savings strategy?",
	AdviceTypeInvestment: "What are good investment options for my situation?",
	AdviceTypeCredit:     "How can I build or improve my credit score?",
	AdviceTypeTaxes:      "What should I know about taxes and tax planning?",
	AdviceTypeGoals:      "How can I achieve my financial goals more effectively?",
}

const defaultAdviceQuestion = "What financial advice do you have for my situation?"

// AdvisorService runs the advice pipeline: profile merge, query enrichment,
// similarity search, relevance scoring, prompt assembly and completion.
type AdvisorService struct {
	index        *EmbeddingIndex
	profiles     ProfileRepository
	enricher     *ContextEnricher
	ranker       *RelevanceRanker
	completer    Completer
	interactions *InteractionLog
	topK         int
	maxTokens    int
	temperature  float64
	logger       *zap.Logger
}

func NewAdvisorService(
	index *EmbeddingIndex,
	profiles ProfileRepository,
	completer Completer,
	interactions *InteractionLog,
	topK int,
	maxTokens int,
	temperature float64,
	logger *zap.Logger,
) *AdvisorService {
	return &AdvisorService{
		index:        index,
		profiles:     profiles,
		enricher:     NewContextEnricher(),
		ranker:       NewRelevanceRanker(),
		completer:    completer,
		interactions: interactions,
		topK:         topK,
		maxTokens:    maxTokens,
		temperature:  temperature,
		logger:       logger,
	}
}

// GenerateAdvice answers a free-text financial question for a user. The
// stored profile is merged with request-supplied overrides, retrieval
// failures degrade to advice without sources, and completion failures
// propagate to the caller. Successful exchanges are recorded asynchronously.
func (s *AdvisorService) GenerateAdvice(ctx context.Context, userID, query string, overrides models.UserContext) (*dto.AdviceResponse, error) {
	userContext := s.resolveUserContext(ctx, userID, overrides)

	retrieved := s.retrieveContext(ctx, query, userContext)

	systemPrompt := buildSystemPrompt(retrieved, userContext)

	advice, err := s.completer.Complete(ctx, systemPrompt, query, s.maxTokens, s.temperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate financial advice: %w", err)
	}

	sources := make([]models.AdviceSource, 0, len(retrieved))
	for _, r := range retrieved {
		sources = append(sources, models.AdviceSource{
			Content:        r.Document.Content,
			Category:       r.Document.Metadata.Category,
			RelevanceScore: r.RelevanceScore,
		})
	}

	response := &dto.AdviceResponse{
		Advice:      sanitizeUTF8(advice),
		Sources:     sources,
		UserContext: userContext,
	}

	s.interactions.Record(userID, query, response)

	s.logger.Info("Advice generated",
		zap.String("user_id", userID),
		zap.Int("sources", len(sources)),
	)

	return response, nil
}

// GenerateAdviceByType answers one of the fixed advice questions. Unknown
// types fall back to the general question.
func (s *AdvisorService) GenerateAdviceByType(ctx context.Context, userID, adviceType string) (*dto.AdviceResponse, error) {
	question, ok := adviceQuestions[adviceType]
	if !ok {
		question = defaultAdviceQuestion
	}
	return s.GenerateAdvice(ctx, userID, question, models.UserContext{})
}

// resolveUserContext merges the stored profile (if any) with request
// overrides. A missing profile is not an error.
func (s *AdvisorService) resolveUserContext(ctx context.Context, userID string, overrides models.UserContext) models.UserContext {
	var userContext models.UserContext

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("Failed to load user profile, using request context only",
				zap.String("user_id", userID), zap.Error(err))
		}
	} else {
		userContext = profile.UserContext
	}

	return userContext.Merge(overrides)
}

// retrieveContext runs enrichment, similarity search and scoring. Any
// failure in the chain degrades to an empty context rather than failing the
// advice request.
func (s *AdvisorService) retrieveContext(ctx context.Context, query string, userContext models.UserContext) []RetrievedDocument {
	enhanced := s.enricher.EnhanceQuery(query, userContext)

	docs, err := s.index.Search(ctx, enhanced, s.topK)
	if err != nil {
		s.logger.Warn("Context retrieval failed, generating advice without sources", zap.Error(err))
		return nil
	}

	docs = s.ranker.Filter(docs, userContext)

	retrieved := make([]RetrievedDocument, 0, len(docs))
	for _, doc := range docs {
		retrieved = append(retrieved, RetrievedDocument{
			Document:       doc,
			RelevanceScore: s.ranker.Score(doc, userContext),
		})
	}
	return retrieved
}

func buildSystemPrompt(retrieved []RetrievedDocument, userContext models.UserContext) string {
	var contextText strings.Builder
	for _, r := range retrieved {
		contextText.WriteString("- ")
		contextText.WriteString(r.Document.Content)
		contextText.WriteString("\n")
	}

	return fmt.Sprintf(`You are a financial advisor specializing in helping immigrants and gig workers. Use the provided context to give personalized, actionable financial advice. Always consider the user's specific situation and provide practical steps they can take.

Context about financial best practices:
%s
User Profile:
%s

Guidelines:
1. Be specific and actionable
2. Consider the user's visa status and work situation
3. Provide step-by-step recommendations
4. Mention any relevant deadlines or timeframes
5. Include potential risks or considerations
6. Keep advice practical and achievable`, contextText.String(), BuildProfileSummary(userContext))
}

// BuildProfileSummary renders the user context one line per present field,
// in a fixed order.
func BuildProfileSummary(userContext models.UserContext) string {
	if userContext.IsEmpty() {
		return "No specific user context provided"
	}

	var lines []string

	if userContext.VisaStatus != "" {
		lines = append(lines, "Visa Status: "+userContext.VisaStatus)
	}
	if userContext.IncomeType != "" {
		lines = append(lines, "Income Type: "+userContext.IncomeType)
	}
	if userContext.Region != "" {
		lines = append(lines, "Region: "+userContext.Region)
	}
	if userContext.Language != "" {
		lines = append(lines, "Preferred Language: "+userContext.Language)
	}
	if len(userContext.Goals) > 0 {
		lines = append(lines, "Financial Goals: "+strings.Join(userContext.Goals, ", "))
	}

	return strings.Join(lines, "\n")
}
