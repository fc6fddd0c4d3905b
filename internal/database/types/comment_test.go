package types_test

import (
	"testing"
	"time"

	"github.com/maqala/maqala/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prev    types.CommentStatus
		next    types.CommentStatus
		trigger types.TransitionTrigger
		want    bool
	}{
		{
			name:    "admin approves pending",
			prev:    types.CommentStatusPending,
			next:    types.CommentStatusApproved,
			trigger: types.TriggerAdmin,
			want:    true,
		},
		{
			name:    "admin rejects pending",
			prev:    types.CommentStatusPending,
			next:    types.CommentStatusRejected,
			trigger: types.TriggerAdmin,
			want:    true,
		},
		{
			name:    "admin archives pending",
			prev:    types.CommentStatusPending,
			next:    types.CommentStatusArchived,
			trigger: types.TriggerAdmin,
			want:    true,
		},
		{
			name:    "admin rejects previously approved",
			prev:    types.CommentStatusApproved,
			next:    types.CommentStatusRejected,
			trigger: types.TriggerAdmin,
			want:    true,
		},
		{
			name:    "admin cannot approve rejected directly",
			prev:    types.CommentStatusRejected,
			next:    types.CommentStatusApproved,
			trigger: types.TriggerAdmin,
			want:    false,
		},
		{
			name:    "appeal approves rejected",
			prev:    types.CommentStatusRejected,
			next:    types.CommentStatusApproved,
			trigger: types.TriggerAppeal,
			want:    true,
		},
		{
			name:    "appeal cannot touch pending",
			prev:    types.CommentStatusPending,
			next:    types.CommentStatusApproved,
			trigger: types.TriggerAppeal,
			want:    false,
		},
		{
			name:    "escalation reports approved",
			prev:    types.CommentStatusApproved,
			next:    types.CommentStatusReported,
			trigger: types.TriggerEscalation,
			want:    true,
		},
		{
			name:    "escalation reports rejected",
			prev:    types.CommentStatusRejected,
			next:    types.CommentStatusReported,
			trigger: types.TriggerEscalation,
			want:    true,
		},
		{
			name:    "escalation does not override archived",
			prev:    types.CommentStatusArchived,
			next:    types.CommentStatusReported,
			trigger: types.TriggerEscalation,
			want:    false,
		},
		{
			name:    "archived is terminal for admins",
			prev:    types.CommentStatusArchived,
			next:    types.CommentStatusApproved,
			trigger: types.TriggerAdmin,
			want:    false,
		},
		{
			name:    "admin resolves reported comment",
			prev:    types.CommentStatusReported,
			next:    types.CommentStatusRejected,
			trigger: types.TriggerAdmin,
			want:    true,
		},
		{
			name:    "self transition is a no-op",
			prev:    types.CommentStatusPending,
			next:    types.CommentStatusPending,
			trigger: types.TriggerAdmin,
			want:    false,
		},
		{
			name:    "undefined target status",
			prev:    types.CommentStatusPending,
			next:    types.CommentStatus("deleted"),
			trigger: types.TriggerAdmin,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, types.CanTransition(tt.prev, tt.next, tt.trigger))
		})
	}
}

func TestCounterDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev types.CommentStatus
		next types.CommentStatus
		want int
	}{
		{"pending to approved increments", types.CommentStatusPending, types.CommentStatusApproved, 1},
		{"rejected to approved increments", types.CommentStatusRejected, types.CommentStatusApproved, 1},
		{"approved to rejected decrements", types.CommentStatusApproved, types.CommentStatusRejected, -1},
		{"approved to archived decrements", types.CommentStatusApproved, types.CommentStatusArchived, -1},
		{"approved to reported decrements", types.CommentStatusApproved, types.CommentStatusReported, -1},
		{"pending to rejected no change", types.CommentStatusPending, types.CommentStatusRejected, 0},
		{"reported to archived no change", types.CommentStatusReported, types.CommentStatusArchived, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, types.CounterDelta(tt.prev, tt.next))
		})
	}
}

func TestCommentHumanReviewed(t *testing.T) {
	t.Parallel()

	comment := &types.Comment{Status: types.CommentStatusPending}
	assert.False(t, comment.HumanReviewed())

	comment.LastReviewedAt = time.Now()
	assert.True(t, comment.HumanReviewed())
}

func TestCommentStatusValid(t *testing.T) {
	t.Parallel()

	for _, status := range []types.CommentStatus{
		types.CommentStatusPending,
		types.CommentStatusApproved,
		types.CommentStatusRejected,
		types.CommentStatusReported,
		types.CommentStatusArchived,
	} {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}

	assert.False(t, types.CommentStatus("deleted").Valid())
	assert.False(t, types.CommentStatus("").Valid())
}
