package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/maqala/maqala/internal/database/types"
	restTypes "github.com/maqala/maqala/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// parseBody decodes a JSON request body into dst.
func parseBody(req bunrouter.Request, dst any) error {
	return sonic.ConfigDefault.NewDecoder(req.Body).Decode(dst)
}

// parseUUID parses a path or body parameter as a UUID.
func parseUUID(value string) (uuid.UUID, bool) {
	id, err := uuid.Parse(value)
	return id, err == nil
}

// writeJSON writes a JSON response with an explicit status code.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	return sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes. Validation failures
// are 400, missing rows are 404 and state conflicts are 409; anything else is
// logged and reported as a 500 without leaking internals.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, types.ErrEmptyBody),
		errors.Is(err, types.ErrBodyTooLong),
		errors.Is(err, types.ErrMissingAuthor),
		errors.Is(err, types.ErrInvalidReason),
		errors.Is(err, types.ErrDetailsRequired),
		errors.Is(err, types.ErrInvalidStatus):
		return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrCommentNotFound),
		errors.Is(err, types.ErrArticleNotFound),
		errors.Is(err, types.ErrAppealNotFound):
		return writeJSON(w, http.StatusNotFound, restTypes.ErrorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrInvalidTransition),
		errors.Is(err, types.ErrStatusConflict),
		errors.Is(err, types.ErrDuplicateReport),
		errors.Is(err, types.ErrAppealAlreadyPending),
		errors.Is(err, types.ErrAppealNotPending),
		errors.Is(err, types.ErrCommentNotRejected):
		return writeJSON(w, http.StatusConflict, restTypes.ErrorResponse{Error: err.Error()})

	default:
		logger.Error("Request failed", zap.Error(err))
		return writeJSON(w, http.StatusInternalServerError, restTypes.ErrorResponse{Error: "Internal server error"})
	}
}

// badRequest writes a 400 with the given message.
func badRequest(w http.ResponseWriter, message string) error {
	return writeJSON(w, http.StatusBadRequest, restTypes.ErrorResponse{Error: message})
}
