package handler

import (
	"net/http"

	"github.com/maqala/maqala/internal/database"
	"github.com/maqala/maqala/internal/rest/convert"
	restTypes "github.com/maqala/maqala/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// AppealHandler handles the public appeal endpoint.
type AppealHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewAppealHandler creates a new appeal handler.
func NewAppealHandler(db database.Client, logger *zap.Logger) *AppealHandler {
	return &AppealHandler{
		db:     db,
		logger: logger,
	}
}

// FileAppeal opens an appeal against a rejected comment. A comment that is
// not rejected, or that already has a pending appeal, yields a conflict.
func (h *AppealHandler) FileAppeal(w http.ResponseWriter, req bunrouter.Request) error {
	commentID, ok := parseUUID(req.Param("id"))
	if !ok {
		return badRequest(w, "Invalid comment ID")
	}

	var in restTypes.FileAppealRequest
	if err := parseBody(req, &in); err != nil {
		return badRequest(w, "Malformed request body")
	}

	requesterID, ok := parseUUID(in.RequesterID)
	if !ok {
		return badRequest(w, "Invalid requester ID")
	}

	appeal, err := h.db.Service().Appeal().FileAppeal(req.Context(), commentID, requesterID, in.Justification)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, convert.Appeal(appeal))
}
