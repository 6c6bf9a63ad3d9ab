package dto

import "fin-advisor/internal/models"

type AddKnowledgeRequest struct {
	Content  string                   `json:"content"`
	Metadata *models.DocumentMetadata `json:"metadata,omitempty"`
	Category string                   `json:"category,omitempty"`
	Priority models.Priority          `json:"priority,omitempty"`
}

type UpdateKnowledgeRequest struct {
	Content  string                   `json:"content,omitempty"`
	Metadata *models.DocumentMetadata `json:"metadata,omitempty"`
	Category string                   `json:"category,omitempty"`
	Priority models.Priority          `json:"priority,omitempty"`
}

type KnowledgeItemResponse struct {
	Message string                    `json:"message"`
	Item    *models.KnowledgeDocument `json:"item"`
}
