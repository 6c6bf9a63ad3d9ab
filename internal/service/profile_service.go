package service

import (
	"context"
	"fmt"
	"time"

	"fin-advisor/internal/models"

	"go.uber.org/zap"
)

// ProfileService manages the stored financial profile that the advisor
// merges into each request's context.
type ProfileService struct {
	repo   ProfileRepository
	logger *zap.Logger
}

func NewProfileService(repo ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		repo:   repo,
		logger: logger,
	}
}

// Save upserts a user's profile.
func (s *ProfileService) Save(ctx context.Context, userID string, userContext models.UserContext) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		ID:          userID,
		UserContext: userContext,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save user profile: %w", err)
	}

	s.logger.Info("User profile saved", zap.String("user_id", userID))
	return profile, nil
}
