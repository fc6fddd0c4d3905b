package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/models"
	"github.com/maqala/maqala/internal/database/types"
	"go.uber.org/zap"
)

// ModerationLogService reads the audit trail and computes classifier
// accuracy from it. Entries themselves are written by the comment service
// inside transition transactions; nothing ever updates or deletes them.
type ModerationLogService struct {
	model  *models.ModerationLogModel
	logger *zap.Logger
}

// NewModerationLog creates a new moderation log service.
func NewModerationLog(model *models.ModerationLogModel, logger *zap.Logger) *ModerationLogService {
	return &ModerationLogService{
		model:  model,
		logger: logger.Named("moderation_log_service"),
	}
}

// AccuracyReport computes classifier accuracy over entries recorded at or
// after since. A zero since covers the whole trail.
func (s *ModerationLogService) AccuracyReport(ctx context.Context, since time.Time) (*types.AccuracyReport, error) {
	entries, err := s.model.GetEntriesSince(ctx, since)
	if err != nil {
		return nil, err
	}

	overridden := 0
	for _, entry := range entries {
		if entry.Overridden {
			overridden++
		}
	}

	return &types.AccuracyReport{
		Total:      len(entries),
		Overridden: overridden,
		Accuracy:   types.Accuracy(entries),
	}, nil
}

// GetCommentTrail returns the audit trail for one comment, oldest first.
func (s *ModerationLogService) GetCommentTrail(
	ctx context.Context, commentID uuid.UUID,
) ([]*types.ModerationLogEntry, error) {
	return s.model.GetEntriesForComment(ctx, commentID)
}
