package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fin-advisor/pkg/config"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

// Completer produces a free-text completion for a system prompt and a user
// message. Implementations must respect the context deadline.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float64) (string, error)
}

// ClaudeCompleter implements Completer against the Anthropic Messages API.
type ClaudeCompleter struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewClaudeCompleter(cfg *config.AnthropicConfig, logger *zap.Logger) *ClaudeCompleter {
	return &ClaudeCompleter{
		client:  anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (c *ClaudeCompleter) Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	}
	if temperature > 0 {
		params.Temperature = anthropic.Float(temperature)
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemPrompt},
		}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("no text in completion response")
	}

	c.logger.Debug("Completion generated",
		zap.String("model", c.model),
		zap.Int("response_length", text.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	return text.String(), nil
}
