package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/classifier"
	"github.com/maqala/maqala/internal/database/models"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/maqala/maqala/internal/notification"
	"github.com/maqala/maqala/pkg/utils"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CommentService owns the comment lifecycle: submission, the moderation state
// machine and the counter reconciliation that keeps article counters in step
// with status transitions.
type CommentService struct {
	db       *bun.DB
	comments *models.CommentModel
	articles *models.ArticleModel
	notifier notification.Dispatcher
	logger   *zap.Logger
}

// NewComment creates a new comment service.
func NewComment(
	db *bun.DB,
	comments *models.CommentModel,
	articles *models.ArticleModel,
	notifier notification.Dispatcher,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		db:       db,
		comments: comments,
		articles: articles,
		notifier: notifier,
		logger:   logger.Named("comment_service"),
	}
}

// SubmitParams carries a new comment submission.
type SubmitParams struct {
	ArticleID uuid.UUID
	AuthorID  *uuid.UUID
	GuestName string
	GuestIP   string
	Body      string
	Analysis  *classifier.AnalysisResult
}

// SubmitComment validates and persists a new comment. The classification
// result decides the initial status: safe content is published immediately,
// toxic content is rejected, everything in between waits for a human. A
// comment created directly into approved reconciles the article counter in
// the same transaction.
func (s *CommentService) SubmitComment(ctx context.Context, params SubmitParams) (*types.Comment, error) {
	// Validate before touching any row
	body := strings.TrimSpace(params.Body)
	if body == "" {
		return nil, types.ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > types.MaxBodyLength {
		return nil, types.ErrBodyTooLong
	}
	// Guest display names collapse onto a single line
	guestName := utils.CompressAllWhitespace(params.GuestName)
	if params.AuthorID == nil && guestName == "" {
		return nil, types.ErrMissingAuthor
	}

	// The parent article must exist
	if _, err := s.articles.GetArticleByID(ctx, params.ArticleID); err != nil {
		return nil, err
	}

	analysis := params.Analysis
	status := initialStatus(analysis.SuggestedAction)
	now := time.Now()

	comment := &types.Comment{
		ID:             uuid.New(),
		ArticleID:      params.ArticleID,
		AuthorID:       params.AuthorID,
		GuestName:      guestName,
		GuestIP:        params.GuestIP,
		Body:           body,
		Status:         status,
		Classification: analysis.Classification,
		Score:          analysis.Score,
		Confidence:     analysis.Confidence,
		FlaggedTerms:   analysis.FlaggedTerms,
		CreatedAt:      now,
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(comment).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create comment: %w (articleID=%s)", err, params.ArticleID)
		}

		// Creation into approved counts as a transition into approved
		if delta := types.CounterDelta(types.CommentStatusPending, status); delta != 0 {
			if err := models.ApplyCounterDelta(ctx, tx, params.ArticleID, delta, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Comment submitted",
		zap.String("commentID", comment.ID.String()),
		zap.String("articleID", params.ArticleID.String()),
		zap.String("status", string(status)),
		zap.String("classification", string(analysis.Classification)),
		zap.Int("score", analysis.Score),
		zap.String("provider", string(analysis.Provider)))

	return comment, nil
}

// ChangeStatus performs an admin-triggered status transition. The status
// write is a compare-and-swap against the previously observed status so two
// concurrent reviews of the same comment cannot both succeed; the loser gets
// ErrStatusConflict. Counter reconciliation and the audit entry share the
// transaction with the status change.
func (s *CommentService) ChangeStatus(
	ctx context.Context, commentID uuid.UUID, target types.CommentStatus, reviewer *types.Reviewer, notes string,
) (*types.Comment, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidStatus, target)
	}

	comment, err := s.comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	prev := comment.Status
	if !types.CanTransition(prev, target, types.TriggerAdmin) {
		return nil, fmt.Errorf("%w: %s -> %s", types.ErrInvalidTransition, prev, target)
	}

	now := time.Now()

	err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return s.applyTransition(ctx, tx, comment, prev, target, reviewer, notes, now)
	})
	if err != nil {
		return nil, err
	}

	comment.Status = target
	comment.LastReviewedAt = now

	s.logger.Info("Comment status changed",
		zap.String("commentID", commentID.String()),
		zap.String("from", string(prev)),
		zap.String("to", string(target)),
		zap.String("reviewerID", reviewer.ID.String()))

	// Rejection opens the appeal path; tell the author
	if target == types.CommentStatusRejected {
		s.notifier.Dispatch(ctx, &notification.Notification{
			Type:    notification.TypeCommentRejected,
			Title:   "Your comment was not published",
			Message: "A moderator reviewed your comment and decided not to publish it. You may appeal this decision.",
			Data: map[string]any{
				"comment_id": commentID.String(),
				"can_appeal": true,
			},
		})
	}

	return comment, nil
}

// ApproveFromAppeal transitions a rejected comment to approved inside the
// given transaction as the result of an approved appeal. The caller owns the
// transaction so the appeal resolution and the comment transition commit or
// roll back together.
func (s *CommentService) ApproveFromAppeal(
	ctx context.Context, tx bun.Tx, comment *types.Comment, reviewer *types.Reviewer, notes string, now time.Time,
) error {
	prev := comment.Status
	if !types.CanTransition(prev, types.CommentStatusApproved, types.TriggerAppeal) {
		return fmt.Errorf("%w: %s -> approved", types.ErrInvalidTransition, prev)
	}

	return s.applyTransition(ctx, tx, comment, prev, types.CommentStatusApproved, reviewer, notes, now)
}

// applyTransition writes the status change, reconciles the article counter
// and appends the audit entry, all against the same transaction. The caller
// has already validated the transition.
func (s *CommentService) applyTransition(
	ctx context.Context,
	tx bun.Tx,
	comment *types.Comment,
	prev, target types.CommentStatus,
	reviewer *types.Reviewer,
	notes string,
	now time.Time,
) error {
	// Compare-and-swap on the status column
	res, err := tx.NewUpdate().
		Model((*types.Comment)(nil)).
		Set("status = ?", target).
		Set("last_reviewed_at = ?", now).
		Where("id = ?", comment.ID).
		Where("status = ?", prev).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update comment status: %w (commentID=%s)", err, comment.ID)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w (commentID=%s, expected=%s)", types.ErrStatusConflict, comment.ID, prev)
	}

	// Exactly one counter reconciliation per transition
	if delta := types.CounterDelta(prev, target); delta != 0 {
		if err := models.ApplyCounterDelta(ctx, tx, comment.ArticleID, delta, now); err != nil {
			return err
		}
	}

	// Record the automated-vs-human decision pair for accuracy tracking.
	// Archiving is housekeeping, not a verdict on the classifier.
	human := humanDecision(target)
	if human == "" {
		return nil
	}

	automated := classifier.ActionFor(comment.Classification)
	entry := &types.ModerationLogEntry{
		ID:                uuid.New(),
		CommentID:         comment.ID,
		Classification:    comment.Classification,
		Score:             comment.Score,
		AutomatedDecision: automated,
		HumanDecision:     human,
		Overridden:        automated != human,
		ReviewerID:        reviewer.ID,
		Notes:             notes,
		CreatedAt:         now,
	}

	if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record moderation log entry: %w (commentID=%s)", err, comment.ID)
	}

	return nil
}

// lockComment loads a comment row under FOR UPDATE so the caller's transaction
// holds it until commit.
func lockComment(ctx context.Context, tx bun.Tx, commentID uuid.UUID) (*types.Comment, error) {
	comment := new(types.Comment)

	err := tx.NewSelect().
		Model(comment).
		Where("id = ?", commentID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, commentLookupError(err, commentID)
	}

	return comment, nil
}

// commentLookupError distinguishes a missing row from a failing database. Only
// the former maps to ErrCommentNotFound.
func commentLookupError(err error, commentID uuid.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w (commentID=%s)", types.ErrCommentNotFound, commentID)
	}

	return fmt.Errorf("failed to load comment: %w (commentID=%s)", err, commentID)
}

// initialStatus maps the suggested action onto the status a new comment is
// created with.
func initialStatus(action types.Decision) types.CommentStatus {
	switch action {
	case types.DecisionApprove:
		return types.CommentStatusApproved
	case types.DecisionReject:
		return types.CommentStatusRejected
	default:
		return types.CommentStatusPending
	}
}

// humanDecision maps a target status onto the decision recorded in the audit
// trail. Returns "" for transitions that are not a verdict.
func humanDecision(target types.CommentStatus) types.Decision {
	switch target {
	case types.CommentStatusApproved:
		return types.DecisionApprove
	case types.CommentStatusRejected:
		return types.DecisionReject
	default:
		return ""
	}
}
