package types_test

import (
	"testing"

	"github.com/maqala/maqala/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reason  types.ReportReason
		details string
		wantErr error
	}{
		{"spam without details", types.ReportReasonSpam, "", nil},
		{"harassment without details", types.ReportReasonHarassment, "", nil},
		{"other with details", types.ReportReasonOther, "links to a scam site", nil},
		{"other without details", types.ReportReasonOther, "", types.ErrDetailsRequired},
		{"unknown reason", types.ReportReason("abusive"), "", types.ErrInvalidReason},
		{"empty reason", types.ReportReason(""), "", types.ErrInvalidReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := types.ValidateReport(tt.reason, tt.details)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
