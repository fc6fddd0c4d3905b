package classifier

import (
	"context"
	"time"

	"github.com/maqala/maqala/internal/ai"
)

// Remote is the contract a remote classification provider must satisfy.
// Implementations may fail; the orchestrator handles fallback.
type Remote interface {
	Classify(ctx context.Context, text string) (*AnalysisResult, error)
}

// RemoteClassifier adapts the AI comment analyzer to the shared analysis
// result contract.
type RemoteClassifier struct {
	analyzer *ai.CommentAnalyzer
}

// NewRemote creates a remote classifier backed by the given analyzer.
func NewRemote(analyzer *ai.CommentAnalyzer) *RemoteClassifier {
	return &RemoteClassifier{analyzer: analyzer}
}

// Classify delegates to the remote provider and normalizes its output.
func (r *RemoteClassifier) Classify(ctx context.Context, text string) (*AnalysisResult, error) {
	start := time.Now()

	analysis, err := r.analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	classification := ClassifyScore(analysis.Score)

	return &AnalysisResult{
		Score:           analysis.Score,
		Classification:  classification,
		SuggestedAction: ActionFor(classification),
		FlaggedTerms:    analysis.FlaggedTerms,
		Confidence:      analysis.Confidence,
		Reason:          analysis.Reason,
		Provider:        ProviderRemote,
		ProcessingTime:  time.Since(start),
	}, nil
}
