package classifier

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Orchestrator picks between the local and remote classifiers and always
// produces exactly one result. Remote classification is opportunistic: it is
// used only when explicitly requested and configured, and any provider error
// or timeout falls back to the local classifier instead of failing the
// submission.
type Orchestrator struct {
	local   *Local
	remote  Remote
	timeout time.Duration
	logger  *zap.Logger
}

// NewOrchestrator creates a classification orchestrator. remote may be nil
// when no provider is configured.
func NewOrchestrator(local *Local, remote Remote, timeout time.Duration, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		local:   local,
		remote:  remote,
		timeout: timeout,
		logger:  logger.Named("classifier"),
	}
}

// RemoteAvailable reports whether a remote provider is configured.
func (o *Orchestrator) RemoteAvailable() bool {
	return o.remote != nil
}

// Classify returns a normalized analysis result for the text. It never
// returns an error; the local classifier is the guaranteed path.
func (o *Orchestrator) Classify(ctx context.Context, text string, preferRemote bool) *AnalysisResult {
	if preferRemote && o.remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()

		result, err := o.remote.Classify(remoteCtx, text)
		if err == nil {
			return result
		}

		// Dependency errors are logged, never surfaced to the submitter
		o.logger.Warn("Remote classification failed, falling back to local",
			zap.Error(err))
	}

	start := time.Now()
	result := o.local.Classify(text)
	result.ProcessingTime = time.Since(start)

	return result
}
