package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ModerationLogModel handles database operations for the audit trail.
type ModerationLogModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewModerationLog creates a new moderation log model.
func NewModerationLog(db *bun.DB, logger *zap.Logger) *ModerationLogModel {
	return &ModerationLogModel{
		db:     db,
		logger: logger.Named("db_moderation_log"),
	}
}

// GetEntriesSince retrieves log entries recorded at or after the given time.
func (r *ModerationLogModel) GetEntriesSince(ctx context.Context, since time.Time) ([]*types.ModerationLogEntry, error) {
	var entries []*types.ModerationLogEntry

	query := r.db.NewSelect().Model(&entries)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	err := query.
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get moderation log entries: %w", err)
	}

	return entries, nil
}

// GetEntriesForComment retrieves the audit trail for one comment.
func (r *ModerationLogModel) GetEntriesForComment(
	ctx context.Context, commentID uuid.UUID,
) ([]*types.ModerationLogEntry, error) {
	var entries []*types.ModerationLogEntry

	err := r.db.NewSelect().
		Model(&entries).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get moderation log entries: %w (commentID=%s)", err, commentID)
	}

	return entries, nil
}
