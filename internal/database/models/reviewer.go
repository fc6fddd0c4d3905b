package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReviewerModel handles database operations for reviewer accounts.
type ReviewerModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReviewer creates a new reviewer model.
func NewReviewer(db *bun.DB, logger *zap.Logger) *ReviewerModel {
	return &ReviewerModel{
		db:     db,
		logger: logger.Named("db_reviewer"),
	}
}

// GetReviewerByKey looks up a reviewer by API key. Used by the authorization
// middleware before any admin-only operation.
func (r *ReviewerModel) GetReviewerByKey(ctx context.Context, apiKey string) (*types.Reviewer, error) {
	reviewer := new(types.Reviewer)

	err := r.db.NewSelect().
		Model(reviewer).
		Where("api_key = ?", apiKey).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrReviewerNotFound
		}
		return nil, fmt.Errorf("failed to get reviewer: %w", err)
	}

	return reviewer, nil
}
