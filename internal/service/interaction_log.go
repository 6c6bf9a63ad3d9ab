package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fin-advisor/internal/dto"
	"fin-advisor/internal/models"

	"go.uber.org/zap"
)

// InteractionLog records advice exchanges for later analysis. Writes run in
// detached goroutines so they never delay or fail the response path; write
// errors are logged and dropped.
type InteractionLog struct {
	repo    InteractionRepository
	timeout time.Duration
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewInteractionLog(repo InteractionRepository, timeout time.Duration, logger *zap.Logger) *InteractionLog {
	return &InteractionLog{
		repo:    repo,
		timeout: timeout,
		logger:  logger,
	}
}

// Record persists one query/response pair asynchronously. The interaction id
// combines the user id with the current time so repeated writes never
// collide.
func (l *InteractionLog) Record(userID, query string, response *dto.AdviceResponse) {
	now := time.Now().UTC()
	interaction := &models.Interaction{
		ID:          fmt.Sprintf("%s_%d", userID, now.UnixMilli()),
		UserID:      userID,
		Query:       query,
		Response:    response.Advice,
		Sources:     response.Sources,
		UserContext: response.UserContext,
		Timestamp:   now,
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		if err := l.repo.Create(ctx, interaction); err != nil {
			l.logger.Warn("Failed to store advice interaction",
				zap.String("interaction_id", interaction.ID),
				zap.Error(err),
			)
		}
	}()
}

// Flush waits for in-flight writes. Called during shutdown.
func (l *InteractionLog) Flush() {
	l.wg.Wait()
}
