package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/models"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/maqala/maqala/internal/notification"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// AppealService lets users contest a rejection and admins resolve the
// contest. An approved appeal cascades into the comment state machine;
// a rejected appeal leaves the comment untouched.
type AppealService struct {
	db       *bun.DB
	appeals  *models.AppealModel
	comment  *CommentService
	notifier notification.Dispatcher
	logger   *zap.Logger
}

// NewAppeal creates a new appeal service.
func NewAppeal(
	db *bun.DB,
	appeals *models.AppealModel,
	comment *CommentService,
	notifier notification.Dispatcher,
	logger *zap.Logger,
) *AppealService {
	return &AppealService{
		db:       db,
		appeals:  appeals,
		comment:  comment,
		notifier: notifier,
		logger:   logger.Named("appeal_service"),
	}
}

// FileAppeal opens an appeal against a rejected comment. The comment must
// currently be rejected and must not already have a pending appeal. The status
// check runs against a locked row in the same transaction as the insert, so a
// comment archived while the appeal is in flight cannot end up appealed.
func (s *AppealService) FileAppeal(
	ctx context.Context, commentID, requesterID uuid.UUID, justification string,
) (*types.Appeal, error) {
	justification = strings.TrimSpace(justification)
	if justification == "" {
		return nil, types.ErrEmptyBody
	}

	appeal := &types.Appeal{
		ID:            uuid.New(),
		CommentID:     commentID,
		RequesterID:   requesterID,
		Justification: justification,
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		comment, err := lockComment(ctx, tx, commentID)
		if err != nil {
			return err
		}

		if !types.Appealable(comment.Status) {
			return fmt.Errorf("%w (commentID=%s, status=%s)", types.ErrCommentNotRejected, commentID, comment.Status)
		}

		return s.appeals.CreateAppeal(ctx, tx, appeal)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appeal filed",
		zap.String("appealID", appeal.ID.String()),
		zap.String("commentID", commentID.String()))

	return appeal, nil
}

// ApproveAppeal resolves a pending appeal in the user's favor. The appeal
// update, the rejected-to-approved comment transition and the counter
// reconciliation commit atomically; resolving an appeal twice fails with a
// conflict on the second call.
func (s *AppealService) ApproveAppeal(
	ctx context.Context, appealID uuid.UUID, reviewer *types.Reviewer, notes string,
) (*types.Appeal, error) {
	appeal, err := s.appeals.GetAppealByID(ctx, appealID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := s.resolveAppeal(ctx, tx, appealID, types.AppealStatusApproved, reviewer, notes, now); err != nil {
			return err
		}

		// Cascade the comment back to approved through the state machine
		comment, err := lockComment(ctx, tx, appeal.CommentID)
		if err != nil {
			return err
		}

		return s.comment.ApproveFromAppeal(ctx, tx, comment, reviewer, notes, now)
	})
	if err != nil {
		return nil, err
	}

	appeal.Status = types.AppealStatusApproved
	appeal.ReviewerID = &reviewer.ID
	appeal.ReviewNotes = notes
	appeal.ReviewedAt = now

	s.logger.Info("Appeal approved",
		zap.String("appealID", appealID.String()),
		zap.String("commentID", appeal.CommentID.String()),
		zap.String("reviewerID", reviewer.ID.String()))

	s.notifier.Dispatch(ctx, &notification.Notification{
		Type:    notification.TypeAppealApproved,
		Title:   "Your appeal was approved",
		Message: "A moderator re-reviewed your comment and it is now published.",
		Data: map[string]any{
			"appeal_id":  appealID.String(),
			"comment_id": appeal.CommentID.String(),
		},
	})

	return appeal, nil
}

// RejectAppeal resolves a pending appeal against the user. The comment stays
// rejected; only the appeal row changes.
func (s *AppealService) RejectAppeal(
	ctx context.Context, appealID uuid.UUID, reviewer *types.Reviewer, notes, reason string,
) (*types.Appeal, error) {
	appeal, err := s.appeals.GetAppealByID(ctx, appealID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return s.resolveAppeal(ctx, tx, appealID, types.AppealStatusRejected, reviewer, notes, now)
	})
	if err != nil {
		return nil, err
	}

	appeal.Status = types.AppealStatusRejected
	appeal.ReviewerID = &reviewer.ID
	appeal.ReviewNotes = notes
	appeal.ReviewedAt = now

	s.logger.Info("Appeal rejected",
		zap.String("appealID", appealID.String()),
		zap.String("reviewerID", reviewer.ID.String()))

	message := "A moderator re-reviewed your comment and upheld the original decision."
	if reason != "" {
		message = fmt.Sprintf("%s Reason: %s", message, reason)
	}

	s.notifier.Dispatch(ctx, &notification.Notification{
		Type:    notification.TypeAppealRejected,
		Title:   "Your appeal was rejected",
		Message: message,
		Data: map[string]any{
			"appeal_id":  appealID.String(),
			"comment_id": appeal.CommentID.String(),
		},
	})

	return appeal, nil
}

// GetPendingAppeals returns the open appeals, oldest first.
func (s *AppealService) GetPendingAppeals(ctx context.Context, limit int) ([]*types.Appeal, error) {
	return s.appeals.GetAppealsByStatus(ctx, types.AppealStatusPending, limit)
}

// resolveAppeal stamps the appeal's terminal status. The update is guarded on
// the pending status so double resolution affects zero rows and returns
// ErrAppealNotPending.
func (s *AppealService) resolveAppeal(
	ctx context.Context,
	tx bun.Tx,
	appealID uuid.UUID,
	status types.AppealStatus,
	reviewer *types.Reviewer,
	notes string,
	now time.Time,
) error {
	res, err := tx.NewUpdate().
		Model((*types.Appeal)(nil)).
		Set("status = ?", status).
		Set("reviewer_id = ?", reviewer.ID).
		Set("review_notes = ?", notes).
		Set("reviewed_at = ?", now).
		Where("id = ?", appealID).
		Where("status = ?", types.AppealStatusPending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve appeal: %w (appealID=%s)", err, appealID)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w (appealID=%s)", types.ErrAppealNotPending, appealID)
	}

	return nil
}
