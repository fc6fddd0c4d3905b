package database

import (
	"github.com/maqala/maqala/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	comment       *models.CommentModel
	report        *models.ReportModel
	appeal        *models.AppealModel
	moderationLog *models.ModerationLogModel
	article       *models.ArticleModel
	reviewer      *models.ReviewerModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		comment:       models.NewComment(db, logger),
		report:        models.NewReport(db, logger),
		appeal:        models.NewAppeal(db, logger),
		moderationLog: models.NewModerationLog(db, logger),
		article:       models.NewArticle(db, logger),
		reviewer:      models.NewReviewer(db, logger),
	}
}

// Comment returns the comment model repository.
func (r *Repository) Comment() *models.CommentModel {
	return r.comment
}

// Report returns the report model repository.
func (r *Repository) Report() *models.ReportModel {
	return r.report
}

// Appeal returns the appeal model repository.
func (r *Repository) Appeal() *models.AppealModel {
	return r.appeal
}

// ModerationLog returns the moderation log model repository.
func (r *Repository) ModerationLog() *models.ModerationLogModel {
	return r.moderationLog
}

// Article returns the article model repository.
func (r *Repository) Article() *models.ArticleModel {
	return r.article
}

// Reviewer returns the reviewer model repository.
func (r *Repository) Reviewer() *models.ReviewerModel {
	return r.reviewer
}
