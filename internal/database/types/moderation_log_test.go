package types_test

import (
	"testing"

	"github.com/maqala/maqala/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	t.Parallel()

	entry := func(automated, human types.Decision) *types.ModerationLogEntry {
		return &types.ModerationLogEntry{
			AutomatedDecision: automated,
			HumanDecision:     human,
			Overridden:        automated != human,
		}
	}

	tests := []struct {
		name    string
		entries []*types.ModerationLogEntry
		want    float64
	}{
		{
			name:    "empty set",
			entries: nil,
			want:    1,
		},
		{
			name: "no overrides is full accuracy",
			entries: []*types.ModerationLogEntry{
				entry(types.DecisionApprove, types.DecisionApprove),
				entry(types.DecisionReject, types.DecisionReject),
			},
			want: 1,
		},
		{
			name: "half overridden",
			entries: []*types.ModerationLogEntry{
				entry(types.DecisionApprove, types.DecisionApprove),
				entry(types.DecisionApprove, types.DecisionReject),
			},
			want: 0.5,
		},
		{
			name: "all overridden",
			entries: []*types.ModerationLogEntry{
				entry(types.DecisionReview, types.DecisionReject),
				entry(types.DecisionApprove, types.DecisionReject),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, types.Accuracy(tt.entries), 0.0001)
		})
	}
}

func TestOverriddenImpliesDisagreement(t *testing.T) {
	t.Parallel()

	entry := &types.ModerationLogEntry{
		AutomatedDecision: types.DecisionReview,
		HumanDecision:     types.DecisionReject,
	}
	entry.Overridden = entry.AutomatedDecision != entry.HumanDecision

	assert.True(t, entry.Overridden)
	assert.NotEqual(t, entry.AutomatedDecision, entry.HumanDecision)
}
