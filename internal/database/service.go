package database

import (
	"github.com/maqala/maqala/internal/database/service"
	"github.com/maqala/maqala/internal/notification"
	"github.com/maqala/maqala/internal/setup/config"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	comment       *service.CommentService
	report        *service.ReportService
	appeal        *service.AppealService
	moderationLog *service.ModerationLogService
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repository *Repository, cfg *config.Config, logger *zap.Logger) *Service {
	notifier := notification.NewWebhook(&cfg.Notification, logger)

	commentService := service.NewComment(
		db, repository.Comment(), repository.Article(), notifier, logger,
	)

	return &Service{
		comment: commentService,
		report: service.NewReport(
			db, repository.Report(), cfg.Moderation.Threshold(), logger,
		),
		appeal: service.NewAppeal(
			db, repository.Appeal(), commentService, notifier, logger,
		),
		moderationLog: service.NewModerationLog(repository.ModerationLog(), logger),
	}
}

// Comment returns the comment service.
func (s *Service) Comment() *service.CommentService {
	return s.comment
}

// Report returns the report service.
func (s *Service) Report() *service.ReportService {
	return s.report
}

// Appeal returns the appeal service.
func (s *Service) Appeal() *service.AppealService {
	return s.appeal
}

// ModerationLog returns the moderation log service.
func (s *Service) ModerationLog() *service.ModerationLogService {
	return s.moderationLog
}
