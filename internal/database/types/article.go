package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var ErrArticleNotFound = errors.New("article not found")

// Article holds the derived counters owned by the article aggregate. Only the
// counter reconciler mutates CommentsCount; it always equals the number of
// comments currently approved for the article and is never negative.
type Article struct {
	bun.BaseModel `bun:"table:articles"`

	ID            uuid.UUID `bun:",pk,type:uuid"` // Unique identifier
	Title         string    `bun:",notnull"`      // Article title
	CommentsCount int       `bun:",notnull"`      // Count of approved comments
	LastCommentAt time.Time `bun:",nullzero"`     // When a comment last became visible
	CreatedAt     time.Time `bun:",notnull"`      // When the article was created
}
