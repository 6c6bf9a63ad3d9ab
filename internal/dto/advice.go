package dto

import "fin-advisor/internal/models"

type GenerateAdviceRequest struct {
	UserID  string              `json:"userId"`
	Query   string              `json:"query"`
	Context *models.UserContext `json:"context,omitempty"`
}

type AdviceResponse struct {
	Advice      string                `json:"advice"`
	Sources     []models.AdviceSource `json:"sources"`
	UserContext models.UserContext    `json:"userContext"`
}
