package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/models"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReportService accumulates user reports against comments and escalates a
// comment to reported once enough distinct reporters agree.
type ReportService struct {
	db        *bun.DB
	reports   *models.ReportModel
	threshold int
	logger    *zap.Logger
}

// NewReport creates a new report service. threshold is the number of reports
// that triggers escalation.
func NewReport(
	db *bun.DB,
	reports *models.ReportModel,
	threshold int,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		db:        db,
		reports:   reports,
		threshold: threshold,
		logger:    logger.Named("report_service"),
	}
}

// FileReport records a report against a comment and escalates its status when
// the report count reaches the threshold. The insert, the count and the
// escalation share one transaction; the comment row is locked so two reports
// crossing the threshold together cannot both escalate.
func (s *ReportService) FileReport(
	ctx context.Context, commentID uuid.UUID, reporterIdentity string, reason types.ReportReason, details string,
) (*types.Report, bool, error) {
	// Validate before touching any row
	if err := types.ValidateReport(reason, details); err != nil {
		return nil, false, err
	}
	if reporterIdentity == "" {
		return nil, false, fmt.Errorf("%w: reporter identity is empty", types.ErrInvalidReason)
	}

	report := &types.Report{
		ID:               uuid.New(),
		CommentID:        commentID,
		ReporterIdentity: reporterIdentity,
		Reason:           reason,
		Details:          details,
		CreatedAt:        time.Now(),
	}

	escalated := false

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Lock the comment row for the duration of the escalation check
		comment, err := lockComment(ctx, tx, commentID)
		if err != nil {
			return err
		}

		// Insert; the unique (comment, reporter) index rejects duplicates
		if _, err := tx.NewInsert().Model(report).Exec(ctx); err != nil {
			if models.IsUniqueViolation(err) {
				return types.ErrDuplicateReport
			}
			return fmt.Errorf("failed to create report: %w (commentID=%s)", err, commentID)
		}

		// Count all reports for the comment and escalate at the threshold
		count, err := tx.NewSelect().
			Model((*types.Report)(nil)).
			Where("comment_id = ?", commentID).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count reports: %w (commentID=%s)", err, commentID)
		}

		if count < s.threshold {
			return nil
		}

		// Already reported or archived means nothing left to do
		if !types.CanTransition(comment.Status, types.CommentStatusReported, types.TriggerEscalation) {
			return nil
		}

		res, err := tx.NewUpdate().
			Model((*types.Comment)(nil)).
			Set("status = ?", types.CommentStatusReported).
			Where("id = ?", commentID).
			Where("status = ?", comment.Status).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to escalate comment: %w (commentID=%s)", err, commentID)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if rows == 0 {
			// Lost a race with another transition; escalation is a no-op
			return nil
		}

		// A previously approved comment leaves public view on escalation
		if delta := types.CounterDelta(comment.Status, types.CommentStatusReported); delta != 0 {
			if err := models.ApplyCounterDelta(ctx, tx, comment.ArticleID, delta, time.Now()); err != nil {
				return err
			}
		}

		escalated = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if escalated {
		s.logger.Info("Comment escalated to reported",
			zap.String("commentID", commentID.String()),
			zap.Int("threshold", s.threshold))
	}

	return report, escalated, nil
}

// GetReportsForComment returns the reports filed against a comment.
func (s *ReportService) GetReportsForComment(ctx context.Context, commentID uuid.UUID) ([]*types.Report, error) {
	return s.reports.GetReportsForComment(ctx, commentID)
}
