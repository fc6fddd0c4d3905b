package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// AppealModel handles database operations for appeal records.
type AppealModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewAppeal creates an AppealModel with database access.
func NewAppeal(db *bun.DB, logger *zap.Logger) *AppealModel {
	return &AppealModel{
		db:     db,
		logger: logger.Named("db_appeal"),
	}
}

// CreateAppeal submits a new appeal request against the given transaction or
// connection. The partial unique index on pending appeals rejects a second
// open appeal for the same comment.
func (r *AppealModel) CreateAppeal(ctx context.Context, tx bun.IDB, appeal *types.Appeal) error {
	appeal.Status = types.AppealStatusPending
	appeal.CreatedAt = time.Now()

	_, err := tx.NewInsert().
		Model(appeal).
		Exec(ctx)
	if err != nil {
		if IsUniqueViolation(err) {
			return types.ErrAppealAlreadyPending
		}
		return fmt.Errorf(
			"failed to create appeal: %w (commentID=%s, requesterID=%s)",
			err, appeal.CommentID, appeal.RequesterID,
		)
	}

	r.logger.Debug("Created appeal",
		zap.String("id", appeal.ID.String()),
		zap.String("commentID", appeal.CommentID.String()))

	return nil
}

// GetAppealByID retrieves an appeal by its ID.
func (r *AppealModel) GetAppealByID(ctx context.Context, appealID uuid.UUID) (*types.Appeal, error) {
	appeal := new(types.Appeal)

	err := r.db.NewSelect().
		Model(appeal).
		Where("id = ?", appealID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrAppealNotFound
		}
		return nil, fmt.Errorf("failed to get appeal: %w (appealID=%s)", err, appealID)
	}

	return appeal, nil
}

// GetAppealsByStatus retrieves appeals with the given status, oldest first.
func (r *AppealModel) GetAppealsByStatus(
	ctx context.Context, status types.AppealStatus, limit int,
) ([]*types.Appeal, error) {
	var appeals []*types.Appeal

	err := r.db.NewSelect().
		Model(&appeals).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get appeals: %w (status=%s)", err, status)
	}

	return appeals, nil
}
