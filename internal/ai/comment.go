package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/maqala/maqala/internal/ai/client"
	"github.com/maqala/maqala/pkg/utils"
	"github.com/openai/openai-go"
	"go.uber.org/zap"
)

// CommentSystemPrompt instructs the model on the moderation task.
const CommentSystemPrompt = `You are a comment moderation assistant for a news publishing platform.
You receive a single user comment, which may mix Arabic and Latin script.
Rate how safe it is to publish on a 0-100 scale where 100 is completely safe.
Penalize hate speech, harassment, spam, scams, misleading claims and profanity.
Respond only with the requested JSON.`

// CommentAnalysisPrompt is the user prompt template for comment analysis.
const CommentAnalysisPrompt = `Analyze the following comment and rate its safety.

Comment:
%s`

// CommentAnalysis is the structured response from the classification model.
type CommentAnalysis struct {
	Score        int      `json:"score"        jsonschema:"required,minimum=0,maximum=100,description=Safety score where 100 is completely safe"`
	Reason       string   `json:"reason"       jsonschema:"required,minLength=1,description=Short explanation of the score"`
	FlaggedTerms []string `json:"flaggedTerms" jsonschema:"description=Specific terms or phrases that lowered the score"`
	Confidence   float64  `json:"confidence"   jsonschema:"required,minimum=0,maximum=1,description=Confidence in the score"`
}

// CommentAnalysisSchema is the JSON schema for the comment analysis response.
var CommentAnalysisSchema = utils.GenerateSchema[CommentAnalysis]()

// CommentAnalyzer scores comment text with a remote classification model.
type CommentAnalyzer struct {
	chat      client.ChatCompletions
	model     string
	retryOpts utils.RetryOptions
	logger    *zap.Logger
}

// NewCommentAnalyzer creates a new comment analyzer.
func NewCommentAnalyzer(chat client.ChatCompletions, model string, logger *zap.Logger) *CommentAnalyzer {
	return &CommentAnalyzer{
		chat:      chat,
		model:     model,
		retryOpts: utils.GetAIRetryOptions(),
		logger:    logger.Named("ai_comment"),
	}
}

// Analyze scores a single comment. Provider errors are returned as-is so the
// orchestrator can fall back to local classification.
func (a *CommentAnalyzer) Analyze(ctx context.Context, text string) (*CommentAnalysis, error) {
	// Prepare chat completion parameters
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(CommentSystemPrompt),
			openai.UserMessage(fmt.Sprintf(CommentAnalysisPrompt, text)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "commentAnalysis",
					Description: openai.String("Safety analysis of a user comment"),
					Schema:      CommentAnalysisSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
		Model:               a.model,
		Temperature:         openai.Float(0.0),
		TopP:                openai.Float(0.95),
		MaxCompletionTokens: openai.Int(1024),
	}

	// Make API request with retries; blocked content is never worth retrying
	resp, err := utils.WithRetry(ctx, func() (*openai.ChatCompletion, error) {
		resp, err := a.chat.New(ctx, params)
		if err != nil && errors.Is(err, utils.ErrContentBlocked) {
			return nil, backoff.Permanent(err)
		}
		return resp, err
	}, a.retryOpts)
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.Content) == 0 {
		return nil, fmt.Errorf("%w: no response from model", utils.ErrContentBlocked)
	}

	// Parse response from AI
	var result CommentAnalysis
	if err := sonic.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("JSON unmarshal error: %w", err)
	}

	// Keep the score inside the documented range regardless of model drift
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}

	a.logger.Debug("Comment analysis completed",
		zap.Int("score", result.Score),
		zap.Float64("confidence", result.Confidence))

	return &result, nil
}
