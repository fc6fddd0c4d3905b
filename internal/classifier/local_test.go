package classifier_test

import (
	"strings"
	"testing"

	"github.com/maqala/maqala/internal/classifier"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalClassify(t *testing.T) {
	t.Parallel()

	local := classifier.NewLocal(classifier.DefaultRules())

	tests := []struct {
		name           string
		text           string
		wantScore      int
		wantClass      types.Classification
		wantAction     types.Decision
		wantFlagged    int
		reasonContains string
	}{
		{
			name:       "clean text is safe",
			text:       "مقال ممتاز، استفدت كثيرا من التحليل المطروح هنا",
			wantScore:  100,
			wantClass:  types.ClassificationSafe,
			wantAction: types.DecisionApprove,
		},
		{
			name:           "single banned term penalized once",
			text:           "هذا الكاتب غبي بكل صراحة وغبي مرة أخرى في نفس التعليق الطويل",
			wantScore:      70,
			wantClass:      types.ClassificationQuestionable,
			wantAction:     types.DecisionReview,
			wantFlagged:    1,
			reasonContains: "banned term",
		},
		{
			name:           "url penalty",
			text:           "read the full analysis over at https://example.com today",
			wantScore:      90,
			wantClass:      types.ClassificationSafe,
			wantAction:     types.DecisionApprove,
			reasonContains: "URL",
		},
		{
			name:           "excessive exclamation marks",
			text:           "this is absolutely unbelievable news!!!!",
			wantScore:      90,
			wantClass:      types.ClassificationSafe,
			wantAction:     types.DecisionApprove,
			reasonContains: "exclamation",
		},
		{
			name:           "excessive question marks",
			text:           "did anyone actually verify this???? really????",
			wantScore:      90,
			wantClass:      types.ClassificationSafe,
			wantAction:     types.DecisionApprove,
			reasonContains: "question",
		},
		{
			name:           "short text",
			text:           "ok",
			wantScore:      80,
			wantClass:      types.ClassificationSafe,
			wantAction:     types.DecisionApprove,
			reasonContains: "short",
		},
		{
			name:           "repeated characters",
			text:           "soooooo boring article to be honest",
			wantScore:      80,
			wantClass:      types.ClassificationSafe,
			wantAction:     types.DecisionApprove,
			reasonContains: "repeated",
		},
		{
			name:           "profanity",
			text:           "what a load of shit this whole piece is",
			wantScore:      75,
			wantClass:      types.ClassificationQuestionable,
			wantAction:     types.DecisionReview,
			wantFlagged:    1,
			reasonContains: "profanity",
		},
		{
			name:        "spam phrase with url is suspicious",
			text:        "احصل على آيفون مجاناً! اضغط هنا http://x",
			wantScore:   30,
			wantClass:   types.ClassificationSuspicious,
			wantAction:  types.DecisionReview,
			wantFlagged: 2,
		},
		{
			name:       "stacked signals clamp at zero",
			text:       "غبي حقير تافه idiot fuck shit!!!! aaaaaaa http://spam.example",
			wantScore:  0,
			wantClass:  types.ClassificationToxic,
			wantAction: types.DecisionReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := local.Classify(tt.text)

			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantClass, result.Classification)
			assert.Equal(t, tt.wantAction, result.SuggestedAction)
			assert.Equal(t, classifier.ProviderLocal, result.Provider)
			assert.InDelta(t, classifier.LocalConfidence, result.Confidence, 0.0001)

			if tt.wantFlagged > 0 {
				assert.Len(t, result.FlaggedTerms, tt.wantFlagged)
			}
			if tt.reasonContains != "" {
				assert.Contains(t, result.Reason, tt.reasonContains)
			}
		})
	}
}

func TestLocalClassifyScoreBounds(t *testing.T) {
	t.Parallel()

	local := classifier.NewLocal(classifier.DefaultRules())

	texts := []string{
		"",
		"a",
		strings.Repeat("غبي ", 50),
		strings.Repeat("!", 100),
		strings.Repeat("perfectly ordinary words ", 40),
		"fuck fuck fuck fuck",
	}

	for _, text := range texts {
		result := local.Classify(text)
		require.GreaterOrEqual(t, result.Score, 0)
		require.LessOrEqual(t, result.Score, 100)
		assert.Equal(t, classifier.ClassifyScore(result.Score), result.Classification)
	}
}

func TestClassifyScoreThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  types.Classification
	}{
		{0, types.ClassificationToxic},
		{15, types.ClassificationToxic},
		{19, types.ClassificationToxic},
		{20, types.ClassificationSuspicious},
		{49, types.ClassificationSuspicious},
		{50, types.ClassificationQuestionable},
		{79, types.ClassificationQuestionable},
		{80, types.ClassificationSafe},
		{100, types.ClassificationSafe},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifier.ClassifyScore(tt.score), "score %d", tt.score)
	}
}
