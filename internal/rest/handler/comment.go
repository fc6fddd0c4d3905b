package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/classifier"
	"github.com/maqala/maqala/internal/database"
	"github.com/maqala/maqala/internal/database/service"
	"github.com/maqala/maqala/internal/rest/convert"
	restTypes "github.com/maqala/maqala/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// CommentHandler handles the public comment endpoints.
type CommentHandler struct {
	db           database.Client
	classifier   *classifier.Orchestrator
	preferRemote bool
	logger       *zap.Logger
}

// NewCommentHandler creates a new comment handler. preferRemote makes every
// submission request remote classification without the client asking for it.
func NewCommentHandler(
	db database.Client, orchestrator *classifier.Orchestrator, preferRemote bool, logger *zap.Logger,
) *CommentHandler {
	return &CommentHandler{
		db:           db,
		classifier:   orchestrator,
		preferRemote: preferRemote,
		logger:       logger,
	}
}

// SubmitComment accepts a new comment, classifies it and persists it with the
// status the classification suggests. Classification never blocks submission;
// a failing remote provider degrades to the local heuristics.
func (h *CommentHandler) SubmitComment(w http.ResponseWriter, req bunrouter.Request) error {
	var in restTypes.SubmitCommentRequest
	if err := parseBody(req, &in); err != nil {
		return badRequest(w, "Malformed request body")
	}

	articleID, ok := parseUUID(in.ArticleID)
	if !ok {
		return badRequest(w, "Invalid article ID")
	}

	var authorID *uuid.UUID

	if in.AuthorID != "" {
		id, ok := parseUUID(in.AuthorID)
		if !ok {
			return badRequest(w, "Invalid author ID")
		}

		authorID = &id
	}

	analysis := h.classifier.Classify(req.Context(), in.Body, in.RemoteCheck || h.preferRemote)

	comment, err := h.db.Service().Comment().SubmitComment(req.Context(), service.SubmitParams{
		ArticleID: articleID,
		AuthorID:  authorID,
		GuestName: in.GuestName,
		GuestIP:   req.RemoteAddr,
		Body:      in.Body,
		Analysis:  analysis,
	})
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, restTypes.SubmitCommentResponse{
		Comment:  convert.Comment(comment),
		Analysis: convert.Analysis(analysis),
	})
}

// GetArticleComments returns the approved comments of an article together
// with its visible comment counter.
func (h *CommentHandler) GetArticleComments(w http.ResponseWriter, req bunrouter.Request) error {
	articleID, ok := parseUUID(req.Param("id"))
	if !ok {
		return badRequest(w, "Invalid article ID")
	}

	article, err := h.db.Model().Article().GetArticleByID(req.Context(), articleID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	comments, err := h.db.Model().Comment().GetApprovedByArticle(req.Context(), articleID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, restTypes.ArticleCommentsResponse{
		Comments:      convert.Comments(comments),
		CommentsCount: article.CommentsCount,
	})
}
