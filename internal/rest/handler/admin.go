package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/maqala/maqala/internal/database"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/maqala/maqala/internal/rest/convert"
	"github.com/maqala/maqala/internal/rest/middleware/auth"
	restTypes "github.com/maqala/maqala/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// DefaultListLimit caps admin listings when the client does not ask for a
// specific page size.
const DefaultListLimit = 50

// AdminHandler handles the reviewer-only moderation endpoints. Every request
// reaching it has already been authenticated by the auth middleware.
type AdminHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(db database.Client, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		db:     db,
		logger: logger,
	}
}

// ListComments returns comments matching the optional status, article and
// classification filters. Filters combine with AND semantics.
func (h *AdminHandler) ListComments(w http.ResponseWriter, req bunrouter.Request) error {
	var filter types.CommentFilter

	query := req.URL.Query()

	if value := query.Get("status"); value != "" {
		status := types.CommentStatus(value)
		if !status.Valid() {
			return badRequest(w, "Invalid status filter")
		}

		filter.Status = &status
	}

	if value := query.Get("article_id"); value != "" {
		articleID, ok := parseUUID(value)
		if !ok {
			return badRequest(w, "Invalid article ID filter")
		}

		filter.ArticleID = &articleID
	}

	if value := query.Get("classification"); value != "" {
		classification := types.Classification(value)
		filter.Classification = &classification
	}

	limit := DefaultListLimit
	if value := query.Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return badRequest(w, "Invalid limit")
		}

		limit = parsed
	}

	comments, err := h.db.Model().Comment().ListComments(req.Context(), filter, limit)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, restTypes.ListCommentsResponse{
		Comments: convert.Comments(comments),
	})
}

// ChangeStatus performs an admin status transition on a comment. Concurrent
// reviews of the same comment surface as a conflict for the losing request.
func (h *AdminHandler) ChangeStatus(w http.ResponseWriter, req bunrouter.Request) error {
	commentID, ok := parseUUID(req.Param("id"))
	if !ok {
		return badRequest(w, "Invalid comment ID")
	}

	var in restTypes.ChangeStatusRequest
	if err := parseBody(req, &in); err != nil {
		return badRequest(w, "Malformed request body")
	}

	reviewer, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	comment, err := h.db.Service().Comment().ChangeStatus(
		req.Context(), commentID, types.CommentStatus(in.Status), reviewer, in.Notes,
	)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Comment(comment))
}

// ListPendingAppeals returns the open appeals, oldest first.
func (h *AdminHandler) ListPendingAppeals(w http.ResponseWriter, req bunrouter.Request) error {
	appeals, err := h.db.Service().Appeal().GetPendingAppeals(req.Context(), DefaultListLimit)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, restTypes.ListAppealsResponse{
		Appeals: convert.Appeals(appeals),
	})
}

// ApproveAppeal resolves an appeal in the user's favor and republishes the
// comment.
func (h *AdminHandler) ApproveAppeal(w http.ResponseWriter, req bunrouter.Request) error {
	appealID, ok := parseUUID(req.Param("id"))
	if !ok {
		return badRequest(w, "Invalid appeal ID")
	}

	var in restTypes.ResolveAppealRequest
	if err := parseBody(req, &in); err != nil {
		return badRequest(w, "Malformed request body")
	}

	reviewer, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	appeal, err := h.db.Service().Appeal().ApproveAppeal(req.Context(), appealID, reviewer, in.Notes)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Appeal(appeal))
}

// RejectAppeal resolves an appeal against the user. The comment stays
// rejected.
func (h *AdminHandler) RejectAppeal(w http.ResponseWriter, req bunrouter.Request) error {
	appealID, ok := parseUUID(req.Param("id"))
	if !ok {
		return badRequest(w, "Invalid appeal ID")
	}

	var in restTypes.ResolveAppealRequest
	if err := parseBody(req, &in); err != nil {
		return badRequest(w, "Malformed request body")
	}

	reviewer, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	appeal, err := h.db.Service().Appeal().RejectAppeal(req.Context(), appealID, reviewer, in.Notes, in.Reason)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.Appeal(appeal))
}

// CommentTrail returns the audit trail for one comment, oldest first. The
// comment must exist even when its trail is empty.
func (h *AdminHandler) CommentTrail(w http.ResponseWriter, req bunrouter.Request) error {
	commentID, ok := parseUUID(req.Param("id"))
	if !ok {
		return badRequest(w, "Invalid comment ID")
	}

	if _, err := h.db.Model().Comment().GetCommentByID(req.Context(), commentID); err != nil {
		return writeError(w, h.logger, err)
	}

	entries, err := h.db.Service().ModerationLog().GetCommentTrail(req.Context(), commentID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, restTypes.CommentTrailResponse{
		Entries: convert.LogEntries(entries),
	})
}

// ModerationAccuracy reports how often human reviewers agreed with the
// automated classification. The optional since query parameter (RFC 3339)
// restricts the window.
func (h *AdminHandler) ModerationAccuracy(w http.ResponseWriter, req bunrouter.Request) error {
	var since time.Time

	if value := req.URL.Query().Get("since"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return badRequest(w, "Invalid since timestamp, expected RFC 3339")
		}

		since = parsed
	}

	report, err := h.db.Service().ModerationLog().AccuracyReport(req.Context(), since)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, restTypes.AccuracyResponse{
		Total:      report.Total,
		Overridden: report.Overridden,
		Accuracy:   report.Accuracy,
	})
}
