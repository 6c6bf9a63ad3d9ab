package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fin-advisor/internal/dto"
	"fin-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecord_StoresInteraction(t *testing.T) {
	repo := &fakeInteractionRepo{}
	log := NewInteractionLog(repo, time.Second, zap.NewNop())

	log.Record("user-3", "How do taxes work?", &dto.AdviceResponse{
		Advice: "File quarterly if you are self-employed.",
		Sources: []models.AdviceSource{
			{Content: "Gig workers pay estimated taxes.", Category: "taxes", RelevanceScore: 0.7},
		},
		UserContext: models.UserContext{IncomeType: "gig"},
	})
	log.Flush()

	require.Equal(t, 1, repo.count())
	recorded := repo.interactions[0]
	assert.Equal(t, "user-3", recorded.UserID)
	assert.Equal(t, "File quarterly if you are self-employed.", recorded.Response)
	assert.Equal(t, "gig", recorded.UserContext.IncomeType)
	assert.False(t, recorded.Timestamp.IsZero())
}

func TestRecord_WriteFailureIsSwallowed(t *testing.T) {
	repo := &fakeInteractionRepo{
		createFn: func(ctx context.Context, interaction *models.Interaction) error {
			return errors.New("insert failed")
		},
	}
	log := NewInteractionLog(repo, time.Second, zap.NewNop())

	log.Record("user-3", "query", &dto.AdviceResponse{Advice: "advice"})
	log.Flush()

	assert.Zero(t, repo.count())
}
