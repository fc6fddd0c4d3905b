package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maqala/maqala/pkg/utils"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedChat returns the queued errors in order, then a completion
// carrying the given JSON body.
type scriptedChat struct {
	errs  []error
	body  string
	calls int
}

func (c *scriptedChat) New(_ context.Context, _ openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	c.calls++
	if len(c.errs) > 0 {
		err := c.errs[0]
		c.errs = c.errs[1:]
		return nil, err
	}

	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{
				FinishReason: "stop",
				Message:      openai.ChatCompletionMessage{Content: c.body},
			},
		},
	}, nil
}

func fastAnalyzerOptions() utils.RetryOptions {
	return utils.RetryOptions{
		MaxElapsedTime:  time.Second,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxRetries:      2,
	}
}

func newTestAnalyzer(chat *scriptedChat) *CommentAnalyzer {
	analyzer := NewCommentAnalyzer(chat, "test-model", zap.NewNop())
	analyzer.retryOpts = fastAnalyzerOptions()
	return analyzer
}

func TestAnalyzeRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	chat := &scriptedChat{
		errs: []error{
			errors.New("connection reset"),
			errors.New("gateway timeout"),
		},
		body: `{"score":35,"reason":"mild profanity","flaggedTerms":["تبا"],"confidence":0.8}`,
	}

	result, err := newTestAnalyzer(chat).Analyze(context.Background(), "comment text")
	require.NoError(t, err)
	assert.Equal(t, 3, chat.calls)
	assert.Equal(t, 35, result.Score)
	assert.Equal(t, []string{"تبا"}, result.FlaggedTerms)
	assert.InDelta(t, 0.8, result.Confidence, 0.0001)
}

func TestAnalyzeExhaustsRetries(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("service unavailable")
	chat := &scriptedChat{
		errs: []error{providerErr, providerErr, providerErr, providerErr},
	}

	_, err := newTestAnalyzer(chat).Analyze(context.Background(), "comment text")
	require.ErrorIs(t, err, providerErr)
	// Initial attempt plus MaxRetries
	assert.Equal(t, 3, chat.calls)
}

func TestAnalyzeDoesNotRetryBlockedContent(t *testing.T) {
	t.Parallel()

	chat := &scriptedChat{
		errs: []error{utils.ErrContentBlocked, utils.ErrContentBlocked},
	}

	_, err := newTestAnalyzer(chat).Analyze(context.Background(), "comment text")
	require.ErrorIs(t, err, utils.ErrContentBlocked)
	assert.Equal(t, 1, chat.calls)
}

func TestAnalyzeClampsScore(t *testing.T) {
	t.Parallel()

	chat := &scriptedChat{
		body: `{"score":140,"reason":"safe","flaggedTerms":[],"confidence":0.9}`,
	}

	result, err := newTestAnalyzer(chat).Analyze(context.Background(), "comment text")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
}
