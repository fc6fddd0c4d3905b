package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation
}

// ReportModel handles database operations for comment reports.
type ReportModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReport creates a new report model.
func NewReport(db *bun.DB, logger *zap.Logger) *ReportModel {
	return &ReportModel{
		db:     db,
		logger: logger.Named("db_report"),
	}
}

// GetReportsForComment retrieves all reports filed against a comment, newest
// first.
func (r *ReportModel) GetReportsForComment(ctx context.Context, commentID uuid.UUID) ([]*types.Report, error) {
	var reports []*types.Report

	err := r.db.NewSelect().
		Model(&reports).
		Where("comment_id = ?", commentID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w (commentID=%s)", err, commentID)
	}

	return reports, nil
}
