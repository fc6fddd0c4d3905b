package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var ErrReviewerNotFound = errors.New("reviewer not found")

// ReviewerRole determines which moderation operations a reviewer may perform.
type ReviewerRole string

const (
	ReviewerRoleModerator ReviewerRole = "moderator"
	ReviewerRoleAdmin     ReviewerRole = "admin"
)

// Reviewer represents a staff account allowed to moderate comments and
// resolve appeals. The API key is consulted by the authorization middleware
// before any admin-only operation touches a row.
type Reviewer struct {
	bun.BaseModel `bun:"table:reviewers"`

	ID        uuid.UUID    `bun:",pk,type:uuid"` // Unique identifier
	Name      string       `bun:",notnull"`      // Display name
	APIKey    string       `bun:",notnull"`      // Bearer key for admin endpoints
	Role      ReviewerRole `bun:",notnull"`      // moderator or admin
	CreatedAt time.Time    `bun:",notnull"`      // When the account was created
}
