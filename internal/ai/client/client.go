package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maqala/maqala/internal/setup/config"
	"github.com/maqala/maqala/pkg/utils"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var ErrProviderNotConfigured = errors.New("classification provider not configured")

// ChatCompletions is the narrow surface the analyzers use.
type ChatCompletions interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// AIClient wraps an OpenAI-compatible provider with a circuit breaker and a
// concurrency bound. Provider failures trip the breaker so that a degraded
// endpoint does not slow every comment submission down to its timeout.
type AIClient struct {
	client    *openai.Client
	breaker   *gobreaker.CircuitBreaker
	semaphore *semaphore.Weighted
	logger    *zap.Logger
}

// NewClient creates a new AIClient. Returns ErrProviderNotConfigured when no
// API key is set so callers can fall back to local-only classification.
func NewClient(cfg *config.OpenAI, logger *zap.Logger) (*AIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrProviderNotConfigured
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithRequestTimeout(time.Duration(cfg.RequestTimeout)*time.Millisecond),
		option.WithMaxRetries(0),
	)

	// Create circuit breaker settings
	settings := gobreaker.Settings{
		Name:        "openai",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(_ string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &AIClient{
		client:    &client,
		breaker:   gobreaker.NewCircuitBreaker(settings),
		semaphore: semaphore.NewWeighted(cfg.MaxConcurrent),
		logger:    logger.Named("ai_client"),
	}, nil
}

// Chat returns a ChatCompletions implementation.
func (c *AIClient) Chat() ChatCompletions {
	return &chatCompletions{client: c}
}

// chatCompletions implements the ChatCompletions interface.
type chatCompletions struct {
	client *AIClient
}

// New makes a chat completion request.
func (c *chatCompletions) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	// Try to acquire semaphore
	if err := c.client.semaphore.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire semaphore: %w", err)
	}
	defer c.client.semaphore.Release(1)

	// Execute request
	result, err := c.client.breaker.Execute(func() (any, error) {
		resp, err := c.client.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return nil, err
		}
		if bl := c.checkBlockReasons(resp); bl != nil {
			return nil, bl
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			return nil, fmt.Errorf("provider unavailable - circuit breaker is open: %w", err)
		}
		c.client.logger.Warn("Failed to make request", zap.Error(err))
		return nil, err
	}

	return result.(*openai.ChatCompletion), nil
}

// checkBlockReasons checks if the response was blocked by content filtering.
func (c *chatCompletions) checkBlockReasons(resp *openai.ChatCompletion) error {
	if resp == nil || len(resp.Choices) == 0 {
		return fmt.Errorf("%w: received empty choices", utils.ErrContentBlocked)
	}

	finishReason := resp.Choices[0].FinishReason
	if finishReason == "content_filter" {
		c.client.logger.Warn("Content blocked",
			zap.String("model", resp.Model),
			zap.String("finishReason", finishReason))
		return utils.ErrContentBlocked
	}

	return nil
}
