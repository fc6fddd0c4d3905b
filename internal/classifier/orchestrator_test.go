package classifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maqala/maqala/internal/classifier"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRemote returns a fixed result or error.
type stubRemote struct {
	result *classifier.AnalysisResult
	err    error
	calls  int
}

func (s *stubRemote) Classify(_ context.Context, _ string) (*classifier.AnalysisResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestOrchestratorLocalOnly(t *testing.T) {
	t.Parallel()

	local := classifier.NewLocal(classifier.DefaultRules())
	orch := classifier.NewOrchestrator(local, nil, time.Second, zap.NewNop())

	assert.False(t, orch.RemoteAvailable())

	// Remote requested but not configured falls through to local
	result := orch.Classify(context.Background(), "perfectly reasonable comment text", true)
	require.NotNil(t, result)
	assert.Equal(t, classifier.ProviderLocal, result.Provider)
	assert.Equal(t, types.ClassificationSafe, result.Classification)
}

func TestOrchestratorPrefersRemote(t *testing.T) {
	t.Parallel()

	remote := &stubRemote{
		result: &classifier.AnalysisResult{
			Score:           35,
			Classification:  types.ClassificationSuspicious,
			SuggestedAction: types.DecisionReview,
			Confidence:      0.92,
			Provider:        classifier.ProviderRemote,
		},
	}

	local := classifier.NewLocal(classifier.DefaultRules())
	orch := classifier.NewOrchestrator(local, remote, time.Second, zap.NewNop())

	result := orch.Classify(context.Background(), "some comment", true)
	require.NotNil(t, result)
	assert.Equal(t, classifier.ProviderRemote, result.Provider)
	assert.Equal(t, 35, result.Score)
	assert.Equal(t, 1, remote.calls)

	// Not requested means remote is never consulted
	result = orch.Classify(context.Background(), "some comment", false)
	assert.Equal(t, classifier.ProviderLocal, result.Provider)
	assert.Equal(t, 1, remote.calls)
}

func TestOrchestratorFallsBackOnRemoteError(t *testing.T) {
	t.Parallel()

	remote := &stubRemote{err: errors.New("provider timeout")}

	local := classifier.NewLocal(classifier.DefaultRules())
	orch := classifier.NewOrchestrator(local, remote, time.Second, zap.NewNop())

	result := orch.Classify(context.Background(), "a comment that is long enough", true)
	require.NotNil(t, result)
	assert.Equal(t, classifier.ProviderLocal, result.Provider)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 100, result.Score)
}
