package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	ErrCommentNotFound   = errors.New("comment not found")
	ErrInvalidStatus     = errors.New("invalid comment status")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrStatusConflict    = errors.New("comment status changed concurrently")
	ErrEmptyBody         = errors.New("comment body is empty")
	ErrBodyTooLong       = errors.New("comment body exceeds maximum length")
	ErrMissingAuthor     = errors.New("either an author or a guest name is required")
)

// MaxBodyLength is the maximum accepted comment length in runes.
const MaxBodyLength = 2000

// CommentStatus is the authoritative lifecycle state of a comment.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
	CommentStatusReported CommentStatus = "reported"
	CommentStatusArchived CommentStatus = "archived"
)

// Valid reports whether s is one of the five defined statuses.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected,
		CommentStatusReported, CommentStatusArchived:
		return true
	default:
		return false
	}
}

// Classification is the advisory safety label produced by a classifier.
type Classification string

const (
	ClassificationSafe         Classification = "safe"
	ClassificationQuestionable Classification = "questionable"
	ClassificationSuspicious   Classification = "suspicious"
	ClassificationToxic        Classification = "toxic"
)

// TransitionTrigger identifies which path is requesting a status change.
// The transition table differs per trigger: admins cannot approve a rejected
// comment directly, only an approved appeal can.
type TransitionTrigger string

const (
	TriggerAdmin      TransitionTrigger = "admin"
	TriggerEscalation TransitionTrigger = "escalation"
	TriggerAppeal     TransitionTrigger = "appeal"
)

// CanTransition reports whether a comment may move from prev to next under the
// given trigger. Archived is terminal for every trigger.
func CanTransition(prev, next CommentStatus, trigger TransitionTrigger) bool {
	if !prev.Valid() || !next.Valid() || prev == next {
		return false
	}
	if prev == CommentStatusArchived {
		return false
	}

	switch trigger {
	case TriggerEscalation:
		return next == CommentStatusReported
	case TriggerAppeal:
		return prev == CommentStatusRejected && next == CommentStatusApproved
	case TriggerAdmin:
		switch prev {
		case CommentStatusPending, CommentStatusReported:
			return next == CommentStatusApproved || next == CommentStatusRejected || next == CommentStatusArchived
		case CommentStatusApproved:
			return next == CommentStatusRejected || next == CommentStatusArchived
		case CommentStatusRejected:
			// Rejected comments only return to approved through an appeal.
			return next == CommentStatusArchived
		}
	}

	return false
}

// CounterDelta returns the change to apply to the parent article's visible
// comment count for a transition between the two statuses.
func CounterDelta(prev, next CommentStatus) int {
	switch {
	case prev != CommentStatusApproved && next == CommentStatusApproved:
		return 1
	case prev == CommentStatusApproved && next != CommentStatusApproved:
		return -1
	default:
		return 0
	}
}

// Comment represents a user- or guest-submitted comment in the database.
type Comment struct {
	bun.BaseModel `bun:"table:comments"`

	ID             uuid.UUID      `bun:",pk,type:uuid"`     // Unique identifier
	ArticleID      uuid.UUID      `bun:",notnull,type:uuid"` // Parent article
	AuthorID       *uuid.UUID     `bun:",type:uuid"`        // Registered author, nil for guests
	GuestName      string         `bun:",nullzero"`         // Display name for guest submissions
	GuestIP        string         `bun:",nullzero"`         // Anonymized IP for guest submissions
	Body           string         `bun:",notnull"`          // Comment text
	Status         CommentStatus  `bun:",notnull"`          // Lifecycle state
	Classification Classification `bun:",notnull"`          // Advisory label from classification
	Score          int            `bun:",notnull"`          // 0-100, higher is safer
	Confidence     float64        `bun:",notnull"`          // Classifier confidence, 0-1
	FlaggedTerms   []string       `bun:",array"`            // Distinct lexical signals that matched
	CreatedAt      time.Time      `bun:",notnull"`          // When the comment was submitted
	LastReviewedAt time.Time      `bun:",nullzero"`         // Set on the first human decision
}

// HumanReviewed reports whether a human has already reviewed this comment.
// Once set, the stored classification is frozen and never overwritten.
func (c *Comment) HumanReviewed() bool {
	return !c.LastReviewedAt.IsZero()
}

// CommentFilter enumerates the optional admin listing filters. Each set field
// is combined with AND semantics.
type CommentFilter struct {
	ArticleID      *uuid.UUID
	Status         *CommentStatus
	Classification *Classification
}
