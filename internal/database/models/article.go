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

// ArticleModel handles database operations for article counters.
type ArticleModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewArticle creates a new article model.
func NewArticle(db *bun.DB, logger *zap.Logger) *ArticleModel {
	return &ArticleModel{
		db:     db,
		logger: logger.Named("db_article"),
	}
}

// GetArticleByID retrieves an article by its ID.
func (r *ArticleModel) GetArticleByID(ctx context.Context, articleID uuid.UUID) (*types.Article, error) {
	article := new(types.Article)

	err := r.db.NewSelect().
		Model(article).
		Where("id = ?", articleID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w (articleID=%s)", err, articleID)
	}

	return article, nil
}

// ApplyCounterDelta atomically adjusts an article's visible comment count in
// the given transaction. Increments also stamp last_comment_at; decrements
// are floored at zero in SQL so the count can never go negative. This is an
// atomic column update, never read-modify-write.
func ApplyCounterDelta(ctx context.Context, tx bun.IDB, articleID uuid.UUID, delta int, now time.Time) error {
	if delta == 0 {
		return nil
	}

	query := tx.NewUpdate().
		Model((*types.Article)(nil)).
		Where("id = ?", articleID)

	if delta > 0 {
		query = query.
			Set("comments_count = comments_count + ?", delta).
			Set("last_comment_at = ?", now)
	} else {
		query = query.
			Set("comments_count = GREATEST(comments_count + ?, 0)", delta)
	}

	if _, err := query.Exec(ctx); err != nil {
		return fmt.Errorf("failed to apply counter delta: %w (articleID=%s, delta=%d)", err, articleID, delta)
	}

	return nil
}
