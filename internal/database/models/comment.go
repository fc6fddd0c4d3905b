package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CommentModel handles database operations for comments.
type CommentModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewComment creates a new comment model.
func NewComment(db *bun.DB, logger *zap.Logger) *CommentModel {
	return &CommentModel{
		db:     db,
		logger: logger.Named("db_comment"),
	}
}

// GetCommentByID retrieves a comment by its ID.
func (r *CommentModel) GetCommentByID(ctx context.Context, commentID uuid.UUID) (*types.Comment, error) {
	comment := new(types.Comment)

	err := r.db.NewSelect().
		Model(comment).
		Where("id = ?", commentID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w (commentID=%s)", err, commentID)
	}

	return comment, nil
}

// GetApprovedByArticle retrieves the approved comments for an article,
// newest first.
func (r *CommentModel) GetApprovedByArticle(ctx context.Context, articleID uuid.UUID) ([]*types.Comment, error) {
	var comments []*types.Comment

	err := r.db.NewSelect().
		Model(&comments).
		Where("article_id = ?", articleID).
		Where("status = ?", types.CommentStatusApproved).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get article comments: %w (articleID=%s)", err, articleID)
	}

	return comments, nil
}

// ListComments retrieves comments matching the filter, oldest first so that
// review queues are processed in submission order. Each set filter field is
// applied with AND semantics.
func (r *CommentModel) ListComments(
	ctx context.Context, filter types.CommentFilter, limit int,
) ([]*types.Comment, error) {
	var comments []*types.Comment

	query := r.db.NewSelect().Model(&comments)

	if filter.ArticleID != nil {
		query = query.Where("article_id = ?", *filter.ArticleID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Classification != nil {
		query = query.Where("classification = ?", *filter.Classification)
	}

	err := query.
		Order("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
