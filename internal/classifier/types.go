package classifier

import (
	"time"

	"github.com/maqala/maqala/internal/database/types"
)

// Provider identifies which classifier produced an analysis result.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderRemote Provider = "remote"
)

// AnalysisResult is the normalized output shape shared by the local and
// remote classifiers.
type AnalysisResult struct {
	Score           int                  `json:"score"`           // 0-100, higher is safer
	Classification  types.Classification `json:"classification"`  // Label derived from the score
	SuggestedAction types.Decision       `json:"suggestedAction"` // Advisory action for moderators
	FlaggedTerms    []string             `json:"flaggedTerms"`    // Distinct lexical signals that matched
	Confidence      float64              `json:"confidence"`      // 0-1
	Reason          string               `json:"reason"`          // Human-readable explanation
	Provider        Provider             `json:"provider"`        // Which classifier produced the result
	ProcessingTime  time.Duration        `json:"processingTime"`  // Wall time spent classifying
}

// ClassifyScore maps a 0-100 safety score onto a classification label.
func ClassifyScore(score int) types.Classification {
	switch {
	case score < 20:
		return types.ClassificationToxic
	case score < 50:
		return types.ClassificationSuspicious
	case score < 80:
		return types.ClassificationQuestionable
	default:
		return types.ClassificationSafe
	}
}

// ActionFor maps a classification onto the suggested moderation action.
// Anything between safe and toxic requires a human decision.
func ActionFor(classification types.Classification) types.Decision {
	switch classification {
	case types.ClassificationToxic:
		return types.DecisionReject
	case types.ClassificationSafe:
		return types.DecisionApprove
	default:
		return types.DecisionReview
	}
}
