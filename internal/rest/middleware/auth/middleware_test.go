package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/maqala/maqala/internal/rest/middleware/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// stubLookup resolves a single known API key and records how often the
// middleware consulted it.
type stubLookup struct {
	key      string
	reviewer *types.Reviewer
	err      error
	calls    int
}

func (s *stubLookup) GetReviewerByKey(_ context.Context, apiKey string) (*types.Reviewer, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if apiKey != s.key {
		return nil, types.ErrReviewerNotFound
	}
	return s.reviewer, nil
}

func newAuthRouter(t *testing.T, lookup *stubLookup) (*bunrouter.Router, *int) {
	t.Helper()

	handlerCalls := 0
	middleware := auth.New(lookup, zap.NewNop())

	router := bunrouter.New()
	router.Use(middleware.AsRESTMiddleware).GET("/admin/comments", func(w http.ResponseWriter, req bunrouter.Request) error {
		handlerCalls++

		reviewer, ok := auth.FromContext(req.Context())
		require.True(t, ok)
		assert.Equal(t, lookup.reviewer.ID, reviewer.ID)

		w.WriteHeader(http.StatusOK)
		return nil
	})

	return router, &handlerCalls
}

func TestMiddlewareRejectsBeforeHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		header      string
		wantLookups int
	}{
		{"missing header", "", 0},
		{"wrong scheme", "Basic c2VjcmV0", 0},
		{"empty token", "Bearer ", 0},
		{"bare scheme", "Bearer", 0},
		{"unknown key", "Bearer wrong-key", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lookup := &stubLookup{key: "valid-key"}
			router, handlerCalls := newAuthRouter(t, lookup)

			req := httptest.NewRequest(http.MethodGet, "/admin/comments", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.wantLookups, lookup.calls)
			assert.Zero(t, *handlerCalls)
		})
	}
}

func TestMiddlewareLookupFailure(t *testing.T) {
	t.Parallel()

	lookup := &stubLookup{err: errors.New("connection refused")}
	router, handlerCalls := newAuthRouter(t, lookup)

	req := httptest.NewRequest(http.MethodGet, "/admin/comments", nil)
	req.Header.Set("Authorization", "Bearer some-key")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, *handlerCalls)
}

func TestMiddlewarePassesReviewerToHandler(t *testing.T) {
	t.Parallel()

	lookup := &stubLookup{
		key: "valid-key",
		reviewer: &types.Reviewer{
			ID:   uuid.New(),
			Name: "Huda",
			Role: types.ReviewerRoleModerator,
		},
	}
	router, handlerCalls := newAuthRouter(t, lookup)

	req := httptest.NewRequest(http.MethodGet, "/admin/comments", nil)
	req.Header.Set("Authorization", "Bearer valid-key")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, lookup.calls)
	assert.Equal(t, 1, *handlerCalls)
}
