package notification

import "context"

// Notification types dispatched by the moderation pipeline.
const (
	TypeCommentRejected = "comment_rejected"
	TypeAppealApproved  = "appeal_approved"
	TypeAppealRejected  = "appeal_rejected"
)

// Notification is the payload handed to the outbound dispatcher.
type Notification struct {
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Link    string         `json:"link,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// Dispatcher delivers user notifications. Delivery is fire-and-forget: the
// pipeline attempts the call once per resolution and failures are only
// logged, never propagated to the moderation transaction.
type Dispatcher interface {
	Dispatch(ctx context.Context, n *Notification)
}
