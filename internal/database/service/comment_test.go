package service

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLookupError(t *testing.T) {
	t.Parallel()

	commentID := uuid.New()

	t.Run("missing row maps to not found", func(t *testing.T) {
		t.Parallel()

		err := commentLookupError(sql.ErrNoRows, commentID)
		assert.ErrorIs(t, err, types.ErrCommentNotFound)
	})

	t.Run("wrapped missing row maps to not found", func(t *testing.T) {
		t.Parallel()

		err := commentLookupError(fmt.Errorf("scan: %w", sql.ErrNoRows), commentID)
		assert.ErrorIs(t, err, types.ErrCommentNotFound)
	})

	t.Run("database failure stays a failure", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("connection refused")
		err := commentLookupError(dbErr, commentID)

		require.NotErrorIs(t, err, types.ErrCommentNotFound)
		assert.ErrorIs(t, err, dbErr)
	})
}
