package convert

import (
	"github.com/maqala/maqala/internal/classifier"
	"github.com/maqala/maqala/internal/database/types"
	restTypes "github.com/maqala/maqala/internal/rest/types"
)

// Comment converts a database comment to its REST API representation.
func Comment(comment *types.Comment) *restTypes.Comment {
	authorID := ""
	if comment.AuthorID != nil {
		authorID = comment.AuthorID.String()
	}

	return &restTypes.Comment{
		ID:             comment.ID.String(),
		ArticleID:      comment.ArticleID.String(),
		AuthorID:       authorID,
		GuestName:      comment.GuestName,
		Body:           comment.Body,
		Status:         string(comment.Status),
		Classification: string(comment.Classification),
		Score:          comment.Score,
		HumanReviewed:  comment.HumanReviewed(),
		CreatedAt:      comment.CreatedAt,
	}
}

// Comments converts a slice of database comments.
func Comments(comments []*types.Comment) []*restTypes.Comment {
	out := make([]*restTypes.Comment, len(comments))
	for i, comment := range comments {
		out[i] = Comment(comment)
	}

	return out
}

// Analysis converts a classification result to its REST API representation.
func Analysis(result *classifier.AnalysisResult) *restTypes.Analysis {
	return &restTypes.Analysis{
		Provider:        string(result.Provider),
		Score:           result.Score,
		Classification:  string(result.Classification),
		SuggestedAction: string(result.SuggestedAction),
		FlaggedTerms:    result.FlaggedTerms,
		Confidence:      result.Confidence,
	}
}

// Report converts a database report to its REST API representation.
func Report(report *types.Report) *restTypes.Report {
	return &restTypes.Report{
		ID:        report.ID.String(),
		CommentID: report.CommentID.String(),
		Reason:    string(report.Reason),
		Details:   report.Details,
		CreatedAt: report.CreatedAt,
	}
}

// Appeal converts a database appeal to its REST API representation.
func Appeal(appeal *types.Appeal) *restTypes.Appeal {
	return &restTypes.Appeal{
		ID:            appeal.ID.String(),
		CommentID:     appeal.CommentID.String(),
		Status:        string(appeal.Status),
		Justification: appeal.Justification,
		ReviewNotes:   appeal.ReviewNotes,
		CreatedAt:     appeal.CreatedAt,
		ReviewedAt:    appeal.ReviewedAt,
	}
}

// Appeals converts a slice of database appeals.
func Appeals(appeals []*types.Appeal) []*restTypes.Appeal {
	out := make([]*restTypes.Appeal, len(appeals))
	for i, appeal := range appeals {
		out[i] = Appeal(appeal)
	}

	return out
}

// LogEntry converts a moderation log entry to its REST API representation.
func LogEntry(entry *types.ModerationLogEntry) *restTypes.ModerationLogEntry {
	return &restTypes.ModerationLogEntry{
		ID:                entry.ID.String(),
		CommentID:         entry.CommentID.String(),
		Classification:    string(entry.Classification),
		Score:             entry.Score,
		AutomatedDecision: string(entry.AutomatedDecision),
		HumanDecision:     string(entry.HumanDecision),
		Overridden:        entry.Overridden,
		ReviewerID:        entry.ReviewerID.String(),
		Notes:             entry.Notes,
		CreatedAt:         entry.CreatedAt,
	}
}

// LogEntries converts a slice of moderation log entries.
func LogEntries(entries []*types.ModerationLogEntry) []*restTypes.ModerationLogEntry {
	out := make([]*restTypes.ModerationLogEntry, len(entries))
	for i, entry := range entries {
		out[i] = LogEntry(entry)
	}

	return out
}
