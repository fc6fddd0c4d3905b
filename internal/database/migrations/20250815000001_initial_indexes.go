package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			// One active report per (comment, reporter) pair
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_reports_comment_reporter
				ON reports (comment_id, reporter_identity)`,
			// At most one pending appeal per comment
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_appeals_pending_comment
				ON appeals (comment_id) WHERE status = 'pending'`,
			// Admin review queue and public listing paths
			`CREATE INDEX IF NOT EXISTS idx_comments_article_status
				ON comments (article_id, status)`,
			`CREATE INDEX IF NOT EXISTS idx_comments_status_created
				ON comments (status, created_at)`,
			// Accuracy reporting window scans
			`CREATE INDEX IF NOT EXISTS idx_moderation_log_created
				ON moderation_log_entries (created_at)`,
			`CREATE INDEX IF NOT EXISTS idx_moderation_log_comment
				ON moderation_log_entries (comment_id)`,
			// Authorization key lookups
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_reviewers_api_key
				ON reviewers (api_key)`,
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"DROP INDEX IF EXISTS idx_reports_comment_reporter",
			"DROP INDEX IF EXISTS idx_appeals_pending_comment",
			"DROP INDEX IF EXISTS idx_comments_article_status",
			"DROP INDEX IF EXISTS idx_comments_status_created",
			"DROP INDEX IF EXISTS idx_moderation_log_created",
			"DROP INDEX IF EXISTS idx_moderation_log_comment",
			"DROP INDEX IF EXISTS idx_reviewers_api_key",
		}

		for _, index := range indexes {
			if _, err := db.NewRaw(index).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
		}

		return nil
	})
}
