package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

type reviewerCtxKey struct{}

// FromContext retrieves the authenticated reviewer from context. The second
// return is false on requests that did not pass through the middleware.
func FromContext(ctx context.Context) (*types.Reviewer, bool) {
	reviewer, ok := ctx.Value(reviewerCtxKey{}).(*types.Reviewer)
	return reviewer, ok
}

// ReviewerLookup resolves an API key to a reviewer account.
type ReviewerLookup interface {
	GetReviewerByKey(ctx context.Context, apiKey string) (*types.Reviewer, error)
}

// Middleware authenticates admin requests against the reviewer API keys.
type Middleware struct {
	reviewers ReviewerLookup
	logger    *zap.Logger
}

// New creates a new auth middleware.
func New(reviewers ReviewerLookup, logger *zap.Logger) *Middleware {
	return &Middleware{
		reviewers: reviewers,
		logger:    logger.Named("auth"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware that resolves the bearer
// token to a reviewer and stores it in the request context. Requests without
// a valid key never reach the handler.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		key, ok := bearerToken(req.Header.Get("Authorization"))
		if !ok {
			http.Error(w, "Missing or malformed Authorization header", http.StatusUnauthorized)
			return nil
		}

		reviewer, err := m.reviewers.GetReviewerByKey(req.Context(), key)
		if err != nil {
			if errors.Is(err, types.ErrReviewerNotFound) {
				http.Error(w, "Invalid API key", http.StatusUnauthorized)
				return nil
			}

			m.logger.Error("Failed to look up reviewer", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return nil
		}

		ctx := context.WithValue(req.Context(), reviewerCtxKey{}, reviewer)

		return next(w, req.WithContext(ctx))
	}
}

// bearerToken extracts the key from an "Authorization: Bearer <key>" header.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))

	return token, token != ""
}
