package dto

import "fin-advisor/internal/models"

type UpsertProfileRequest struct {
	models.UserContext
}

type ProfileResponse struct {
	Profile *models.UserProfile `json:"profile"`
}
