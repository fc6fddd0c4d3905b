package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	ErrDuplicateReport = errors.New("comment already reported by this reporter")
	ErrInvalidReason   = errors.New("invalid report reason")
	ErrDetailsRequired = errors.New("details are required when reason is other")
)

// ReportReason is the enumerated reason a comment was reported.
type ReportReason string

const (
	ReportReasonSpam       ReportReason = "spam"
	ReportReasonOffensive  ReportReason = "offensive"
	ReportReasonMisleading ReportReason = "misleading"
	ReportReasonHarassment ReportReason = "harassment"
	ReportReasonOther      ReportReason = "other"
)

// Valid reports whether r is one of the five enumerated reasons.
func (r ReportReason) Valid() bool {
	switch r {
	case ReportReasonSpam, ReportReasonOffensive, ReportReasonMisleading,
		ReportReasonHarassment, ReportReasonOther:
		return true
	default:
		return false
	}
}

// Report represents a user report filed against a comment. At most one active
// report exists per (comment, reporter) pair, enforced by a unique index.
type Report struct {
	bun.BaseModel `bun:"table:reports"`

	ID               uuid.UUID    `bun:",pk,type:uuid"`      // Unique identifier
	CommentID        uuid.UUID    `bun:",notnull,type:uuid"` // Reported comment
	ReporterIdentity string       `bun:",notnull"`           // User ID or anonymized IP fallback
	Reason           ReportReason `bun:",notnull"`           // Enumerated reason
	Details          string       `bun:",nullzero"`          // Free text, required for "other"
	CreatedAt        time.Time    `bun:",notnull"`           // When the report was filed
}

// ValidateReport checks the reason enum and the details requirement before any
// state is touched.
func ValidateReport(reason ReportReason, details string) error {
	if !reason.Valid() {
		return ErrInvalidReason
	}
	if reason == ReportReasonOther && details == "" {
		return ErrDetailsRequired
	}
	return nil
}
