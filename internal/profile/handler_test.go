package profile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/redmonkez12/devconnector-api/internal/auth"
)

func serve(h http.HandlerFunc, pattern, method, target, callerID, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(auth.WithUserID(req.Context(), callerID))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestMeHandlerWithoutProfile(t *testing.T) {
	f := newFixture(t)
	h := NewHandler(f.svc)

	rec := serve(h.Me, "/api/profile/me", http.MethodGet, "/api/profile/me", f.ana.ID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"There is no profile for this user"}`, rec.Body.String())
}

func TestUpsertHandler(t *testing.T) {
	f := newFixture(t)
	h := NewHandler(f.svc)

	rec := serve(h.Upsert, "/api/profile", http.MethodPost, "/api/profile", f.ana.ID.String(), `{"status":"Dev","skills":"js, go"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"skills":["js","go"]`)

	rec = serve(h.Upsert, "/api/profile", http.MethodPost, "/api/profile", f.ana.ID.String(), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Status is required","param":"status"},{"msg":"Skills is required","param":"skills"}]}`, rec.Body.String())
}

func TestDeleteExperienceHandlerNotFound(t *testing.T) {
	f := newFixture(t)
	f.createProfile(t)
	h := NewHandler(f.svc)

	rec := serve(h.DeleteExperience, "/api/profile/experience/{exp_id}", http.MethodDelete, "/api/profile/experience/abc", f.ana.ID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Experience not found"}`, rec.Body.String())
}

func TestDeleteAccountHandler(t *testing.T) {
	f := newFixture(t)
	f.createProfile(t)
	h := NewHandler(f.svc)

	rec := serve(h.DeleteAccount, "/api/profile", http.MethodDelete, "/api/profile", f.ana.ID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"User deleted"}`, rec.Body.String())
}
