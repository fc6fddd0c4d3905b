package types_test

import (
	"testing"

	"github.com/maqala/maqala/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestAppealable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status types.CommentStatus
		want   bool
	}{
		{"rejected can be appealed", types.CommentStatusRejected, true},
		{"pending cannot be appealed", types.CommentStatusPending, false},
		{"approved has nothing to appeal", types.CommentStatusApproved, false},
		{"reported waits for review first", types.CommentStatusReported, false},
		{"archived stays archived", types.CommentStatusArchived, false},
		{"undefined status", types.CommentStatus("deleted"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, types.Appealable(tt.status))
		})
	}
}
