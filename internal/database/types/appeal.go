package types

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	ErrAppealNotFound       = errors.New("appeal not found")
	ErrAppealNotPending     = errors.New("appeal is not pending")
	ErrAppealAlreadyPending = errors.New("comment already has a pending appeal")
	ErrCommentNotRejected   = errors.New("comment is not rejected")
)

// AppealStatus represents the status of an appeal.
type AppealStatus string

const (
	AppealStatusPending  AppealStatus = "pending"
	AppealStatusApproved AppealStatus = "approved"
	AppealStatusRejected AppealStatus = "rejected"
)

// Appealable reports whether a comment in the given status may be appealed.
// Only a rejection is contestable; an archived or approved comment has nothing
// left to appeal.
func Appealable(status CommentStatus) bool {
	return status == CommentStatusRejected
}

// Appeal represents a user request to re-review a rejected comment. Only one
// pending appeal may exist per comment, enforced by a partial unique index.
type Appeal struct {
	bun.BaseModel `bun:"table:appeals"`

	ID            uuid.UUID    `bun:",pk,type:uuid"`      // Unique identifier
	CommentID     uuid.UUID    `bun:",notnull,type:uuid"` // The rejected comment being contested
	RequesterID   uuid.UUID    `bun:",notnull,type:uuid"` // The appealing user
	Justification string       `bun:",notnull"`           // Free-text justification
	Status        AppealStatus `bun:",notnull"`           // pending, approved or rejected
	ReviewerID    *uuid.UUID   `bun:",type:uuid"`         // Admin who resolved the appeal
	ReviewNotes   string       `bun:",nullzero"`          // Notes recorded at resolution
	CreatedAt     time.Time    `bun:",notnull"`           // When the appeal was filed
	ReviewedAt    time.Time    `bun:",nullzero"`          // When the appeal was resolved
}
