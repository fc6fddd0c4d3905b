package notification

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/maqala/maqala/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWebhookDispatch(t *testing.T) {
	t.Parallel()

	received := make(chan *Notification, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var n Notification
		require.NoError(t, sonic.Unmarshal(body, &n))

		received <- &n

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	dispatcher := NewWebhook(&config.Notification{WebhookURL: srv.URL}, zap.NewNop())

	dispatcher.Dispatch(context.Background(), &Notification{
		Type:    TypeCommentRejected,
		Title:   "Your comment was not published",
		Message: "A moderator reviewed your comment and decided not to publish it.",
		Data:    map[string]any{"can_appeal": true},
	})

	n := <-received
	assert.Equal(t, TypeCommentRejected, n.Type)
	assert.Equal(t, "Your comment was not published", n.Title)
	assert.Equal(t, true, n.Data["can_appeal"])
}

func TestWebhookDispatchEndpointFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dispatcher := NewWebhook(&config.Notification{WebhookURL: srv.URL}, zap.NewNop())

	// Delivery failures are logged and dropped, never returned
	dispatcher.Dispatch(context.Background(), &Notification{Type: TypeAppealRejected})
}

func TestWebhookDisabled(t *testing.T) {
	t.Parallel()

	dispatcher := NewWebhook(&config.Notification{}, zap.NewNop())

	_, ok := dispatcher.(*noopDispatcher)
	assert.True(t, ok)

	dispatcher.Dispatch(context.Background(), &Notification{Type: TypeAppealApproved})
}
