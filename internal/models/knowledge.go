package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DocumentMetadata carries the ranking-relevant attributes of a knowledge
// document as typed fields. Everything else observed in the corpus
// (time horizons, cost ranges, account types) is kept in Extra so it
// round-trips through storage without being part of the ranking contract.
type DocumentMetadata struct {
	Category       string
	VisaType       string
	WorkerType     string
	Priority       Priority
	TargetAudience string
	Extra          map[string]any
}

func (m DocumentMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+5)
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.Category != "" {
		out["category"] = m.Category
	}
	if m.VisaType != "" {
		out["visa_type"] = m.VisaType
	}
	if m.WorkerType != "" {
		out["worker_type"] = m.WorkerType
	}
	if m.Priority != "" {
		out["priority"] = string(m.Priority)
	}
	if m.TargetAudience != "" {
		out["target_audience"] = m.TargetAudience
	}
	return json.Marshal(out)
}

func (m *DocumentMetadata) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["category"].(string); ok {
		m.Category = v
	}
	if v, ok := raw["visa_type"].(string); ok {
		m.VisaType = v
	}
	if v, ok := raw["worker_type"].(string); ok {
		m.WorkerType = v
	}
	if v, ok := raw["priority"].(string); ok {
		m.Priority = Priority(v)
	}
	if v, ok := raw["target_audience"].(string); ok {
		m.TargetAudience = v
	}
	delete(raw, "category")
	delete(raw, "visa_type")
	delete(raw, "worker_type")
	delete(raw, "priority")
	delete(raw, "target_audience")
	if len(raw) > 0 {
		m.Extra = raw
	}
	return nil
}

// Overlay returns a copy of m with every non-empty field of o applied on top.
// Extra keys are merged, o winning on conflicts.
func (m DocumentMetadata) Overlay(o DocumentMetadata) DocumentMetadata {
	out := m
	if o.Category != "" {
		out.Category = o.Category
	}
	if o.VisaType != "" {
		out.VisaType = o.VisaType
	}
	if o.WorkerType != "" {
		out.WorkerType = o.WorkerType
	}
	if o.Priority != "" {
		out.Priority = o.Priority
	}
	if o.TargetAudience != "" {
		out.TargetAudience = o.TargetAudience
	}
	if len(o.Extra) > 0 {
		merged := make(map[string]any, len(m.Extra)+len(o.Extra))
		for k, v := range m.Extra {
			merged[k] = v
		}
		for k, v := range o.Extra {
			merged[k] = v
		}
		out.Extra = merged
	}
	return out
}

// KnowledgeDocument is one financial-advice passage of the knowledge base.
// Content is never empty; the embedding is filled in lazily when the vector
// index first sees the document.
type KnowledgeDocument struct {
	ID        uuid.UUID        `json:"id"`
	Content   string           `json:"content"`
	Metadata  DocumentMetadata `json:"metadata"`
	Embedding []float32        `json:"-"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
