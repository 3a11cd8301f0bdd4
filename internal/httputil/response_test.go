package httputil

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/logging"
)

func discardLogger() *logging.Logger {
	return logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRespondAppErrorMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondAppError(rec, discardLogger(), apperr.New(apperr.NotFound, "Post not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Post not found"}`, rec.Body.String())
}

func TestRespondAppErrorIssues(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondAppError(rec, discardLogger(), apperr.Listed(apperr.Conflict, "User already exists"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, rec.Body.String())
}

func TestRespondAppErrorHidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondAppError(rec, discardLogger(), apperr.Wrap(apperr.Persistence, "failed to save post", errors.New("dial tcp: refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"msg":"Server Error"}`, rec.Body.String())
}

func TestRespondAppErrorPlainError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondAppError(rec, discardLogger(), errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Text string `json:"text"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "hi", dst.Text)

	empty := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, DecodeJSON(empty, &dst))

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	assert.ErrorIs(t, DecodeJSON(bad, &dst), ErrInvalidBody)
}
