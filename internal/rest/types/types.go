package types

import "time"

// Comment represents a comment as exposed over the REST API.
type Comment struct {
	ID             string    `json:"id"`
	ArticleID      string    `json:"articleId"`
	AuthorID       string    `json:"authorId,omitempty"`
	GuestName      string    `json:"guestName,omitempty"`
	Body           string    `json:"body"`
	Status         string    `json:"status"`
	Classification string    `json:"classification"`
	Score          int       `json:"score"`
	HumanReviewed  bool      `json:"humanReviewed"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Analysis represents the classification verdict returned alongside a new
// submission.
type Analysis struct {
	Provider        string   `json:"provider"`
	Score           int      `json:"score"`
	Classification  string   `json:"classification"`
	SuggestedAction string   `json:"suggestedAction"`
	FlaggedTerms    []string `json:"flaggedTerms,omitempty"`
	Confidence      float64  `json:"confidence"`
}

// Report represents a filed report as exposed over the REST API.
type Report struct {
	ID        string    `json:"id"`
	CommentID string    `json:"commentId"`
	Reason    string    `json:"reason"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Appeal represents an appeal as exposed over the REST API.
type Appeal struct {
	ID            string    `json:"id"`
	CommentID     string    `json:"commentId"`
	Status        string    `json:"status"`
	Justification string    `json:"justification"`
	ReviewNotes   string    `json:"reviewNotes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	ReviewedAt    time.Time `json:"reviewedAt"`
}

// SubmitCommentRequest represents the body for the submit comment endpoint.
type SubmitCommentRequest struct {
	ArticleID string `json:"articleId"`
	AuthorID  string `json:"authorId,omitempty"`
	GuestName string `json:"guestName,omitempty"`
	Body      string `json:"body"`
	// RemoteCheck requests remote classification for this submission.
	// It is honored only when a remote provider is configured.
	RemoteCheck bool `json:"remoteCheck,omitempty"`
}

// SubmitCommentResponse represents the response for the submit comment endpoint.
type SubmitCommentResponse struct {
	Comment  *Comment  `json:"comment"`
	Analysis *Analysis `json:"analysis"`
}

// ListCommentsResponse represents the response for comment listing endpoints.
type ListCommentsResponse struct {
	Comments []*Comment `json:"comments"`
}

// ArticleCommentsResponse represents the response for the public article
// comments endpoint.
type ArticleCommentsResponse struct {
	Comments      []*Comment `json:"comments"`
	CommentsCount int        `json:"commentsCount"`
}

// FileReportRequest represents the body for the file report endpoint.
type FileReportRequest struct {
	Reporter string `json:"reporter"`
	Reason   string `json:"reason"`
	Details  string `json:"details,omitempty"`
}

// FileReportResponse represents the response for the file report endpoint.
type FileReportResponse struct {
	Report    *Report `json:"report"`
	Escalated bool    `json:"escalated"`
}

// FileAppealRequest represents the body for the file appeal endpoint.
type FileAppealRequest struct {
	RequesterID   string `json:"requesterId"`
	Justification string `json:"justification"`
}

// ChangeStatusRequest represents the body for the admin status change endpoint.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// ResolveAppealRequest represents the body for the appeal resolution endpoints.
type ResolveAppealRequest struct {
	Notes  string `json:"notes,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ListAppealsResponse represents the response for the pending appeals endpoint.
type ListAppealsResponse struct {
	Appeals []*Appeal `json:"appeals"`
}

// ModerationLogEntry represents one audit trail entry as exposed over the
// REST API.
type ModerationLogEntry struct {
	ID                string    `json:"id"`
	CommentID         string    `json:"commentId"`
	Classification    string    `json:"classification"`
	Score             int       `json:"score"`
	AutomatedDecision string    `json:"automatedDecision"`
	HumanDecision     string    `json:"humanDecision"`
	Overridden        bool      `json:"overridden"`
	ReviewerID        string    `json:"reviewerId"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CommentTrailResponse represents the response for the comment audit trail
// endpoint.
type CommentTrailResponse struct {
	Entries []*ModerationLogEntry `json:"entries"`
}

// AccuracyResponse represents the response for the accuracy report endpoint.
type AccuracyResponse struct {
	Total      int     `json:"total"`
	Overridden int     `json:"overridden"`
	Accuracy   float64 `json:"accuracy"`
}

// ErrorResponse represents an error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
