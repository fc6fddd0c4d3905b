package migrations

import (
	"context"
	"fmt"

	"github.com/maqala/maqala/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// Create tables
		models := []any{
			(*types.Article)(nil),
			(*types.Comment)(nil),
			(*types.Report)(nil),
			(*types.Appeal)(nil),
			(*types.ModerationLogEntry)(nil),
			(*types.Reviewer)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		// Drop tables in reverse dependency order
		models := []any{
			(*types.Reviewer)(nil),
			(*types.ModerationLogEntry)(nil),
			(*types.Appeal)(nil),
			(*types.Report)(nil),
			(*types.Comment)(nil),
			(*types.Article)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table for %T: %w", model, err)
			}
		}

		return nil
	})
}
