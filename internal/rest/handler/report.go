package handler

import (
	"net/http"

	"github.com/maqala/maqala/internal/database"
	"github.com/maqala/maqala/internal/database/types"
	"github.com/maqala/maqala/internal/rest/convert"
	restTypes "github.com/maqala/maqala/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ReportHandler handles the public report endpoint.
type ReportHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(db database.Client, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		db:     db,
		logger: logger,
	}
}

// FileReport records a report against a comment. Reporting the same comment
// twice from one identity is a conflict; anonymous reporters fall back to
// their remote address.
func (h *ReportHandler) FileReport(w http.ResponseWriter, req bunrouter.Request) error {
	commentID, ok := parseUUID(req.Param("id"))
	if !ok {
		return badRequest(w, "Invalid comment ID")
	}

	var in restTypes.FileReportRequest
	if err := parseBody(req, &in); err != nil {
		return badRequest(w, "Malformed request body")
	}

	reporter := in.Reporter
	if reporter == "" {
		reporter = req.RemoteAddr
	}

	report, escalated, err := h.db.Service().Report().FileReport(
		req.Context(), commentID, reporter, types.ReportReason(in.Reason), in.Details,
	)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, restTypes.FileReportResponse{
		Report:    convert.Report(report),
		Escalated: escalated,
	})
}
