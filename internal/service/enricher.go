package service

import (
	"fmt"

	"fin-advisor/internal/models"
)

// ContextEnricher biases retrieval queries with user profile facts. It is
// stateless and pure.
type ContextEnricher struct{}

func NewContextEnricher() *ContextEnricher {
	return &ContextEnricher{}
}

// EnhanceQuery appends profile clauses to the query in a fixed order: visa
// status, gig income, region. Fields that are absent contribute nothing, so
// an empty context returns the query unchanged.
func (e *ContextEnricher) EnhanceQuery(query string, userContext models.UserContext) string {
	enhanced := query

	if userContext.VisaStatus != "" {
		enhanced += fmt.Sprintf(" for %s visa holders", userContext.VisaStatus)
	}
	if userContext.IncomeType == "gig" {
		enhanced += " for gig workers and freelancers"
	}
	if userContext.Region != "" {
		enhanced += fmt.Sprintf(" in %s", userContext.Region)
	}

	return enhanced
}
