package httputil

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/logging"
)

// MessageResponse is the single-reason response body.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorsResponse is the response body for validation and account failures.
type ErrorsResponse struct {
	Errors []apperr.Issue `json:"errors"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondMessage sends `{msg}` with the given status code.
func RespondMessage(w http.ResponseWriter, msg string, statusCode int) {
	RespondJSON(w, MessageResponse{Msg: msg}, statusCode)
}

// RespondIssues sends `{errors: [...]}` with the given status code.
func RespondIssues(w http.ResponseWriter, issues []apperr.Issue, statusCode int) {
	RespondJSON(w, ErrorsResponse{Errors: issues}, statusCode)
}

// RespondAppError renders err according to its kind. Server-side failures are logged with
// their cause and answered with an opaque message.
func RespondAppError(w http.ResponseWriter, logger *logging.Logger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		logger.Error("unexpected error", "error", err.Error())
		RespondMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	status := appErr.Kind.Status()
	if !appErr.Kind.IsClientError() {
		logger.Error("request failed", "kind", appErr.Kind.String(), "error", err.Error())
		RespondMessage(w, "Server Error", status)
		return
	}

	logger.Warn("request rejected", "kind", appErr.Kind.String(), "reason", appErr.Msg)
	if len(appErr.Issues) > 0 {
		RespondIssues(w, appErr.Issues, status)
		return
	}
	RespondMessage(w, appErr.Msg, status)
}
