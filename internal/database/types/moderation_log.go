package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Decision is a moderation decision, automated or human.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
	DecisionReview  Decision = "review"
)

// ModerationLogEntry records one automated-vs-human decision pair. Written
// once per human decision and immutable afterward; this is the audit trail
// and the accuracy-measurement source.
type ModerationLogEntry struct {
	bun.BaseModel `bun:"table:moderation_log_entries"`

	ID                uuid.UUID      `bun:",pk,type:uuid"`      // Unique identifier
	CommentID         uuid.UUID      `bun:",notnull,type:uuid"` // Reviewed comment
	Classification    Classification `bun:",notnull"`           // Advisory label at review time
	Score             int            `bun:",notnull"`           // Classifier score at review time
	AutomatedDecision Decision       `bun:",notnull"`           // What the classifier suggested
	HumanDecision     Decision       `bun:",notnull"`           // What the reviewer decided
	Overridden        bool           `bun:",notnull"`           // Human disagreed with automation
	ReviewerID        uuid.UUID      `bun:",notnull,type:uuid"` // Who made the decision
	Notes             string         `bun:",nullzero"`          // Optional reviewer notes
	CreatedAt         time.Time      `bun:",notnull"`           // When the decision was recorded
}

// AccuracyReport summarizes classifier accuracy over a set of log entries.
// Computed on demand, never stored.
type AccuracyReport struct {
	Total      int     `json:"total"`
	Overridden int     `json:"overridden"`
	Accuracy   float64 `json:"accuracy"`
}

// Accuracy computes the classifier accuracy over a set of log entries:
// the fraction whose automated suggestion the human did not override.
// Returns 1 for an empty set.
func Accuracy(entries []*ModerationLogEntry) float64 {
	if len(entries) == 0 {
		return 1
	}

	matched := 0
	for _, entry := range entries {
		if !entry.Overridden || entry.AutomatedDecision == entry.HumanDecision {
			matched++
		}
	}

	return float64(matched) / float64(len(entries))
}
