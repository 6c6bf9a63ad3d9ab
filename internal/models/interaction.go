package models

import "time"

// AdviceSource describes one knowledge document that informed a piece of
// advice, as returned to the caller and stored in the audit trail.
type AdviceSource struct {
	Content        string  `json:"content"`
	Category       string  `json:"category"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// Interaction is one query/response exchange recorded for later analysis.
// The ID is the user id joined with the write time, so repeated writes for
// the same user never collide.
type Interaction struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Query       string         `json:"query"`
	Response    string         `json:"response"`
	Sources     []AdviceSource `json:"sources"`
	UserContext UserContext    `json:"userContext"`
	Timestamp   time.Time      `json:"timestamp"`
}
