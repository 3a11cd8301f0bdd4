package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	exceeded  bool
	checkErr  error
	recordErr error
	recorded  []string
}

func (s *stubLimiter) CheckIPRateLimitWithPurpose(_ context.Context, _, _ string) (bool, error) {
	return s.exceeded, s.checkErr
}

func (s *stubLimiter) RecordIPRequestWithPurpose(_ context.Context, ip, purpose string) error {
	s.recorded = append(s.recorded, purpose+":"+ip)
	return s.recordErr
}

func TestRegisterHandler(t *testing.T) {
	svc, _, codec := newTestService(t)
	limiter := &stubLimiter{}
	h := NewHandler(svc, limiter)

	body := `{"name":"Ana","email":"a@x.com","password":"secret12"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:4321"
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := codec.Verify(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"register:10.0.0.1"}, limiter.recorded)

	rec = httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, rec.Body.String())
}

func TestRegisterHandlerValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHandler(svc, &stubLimiter{})
	rec := httptest.NewRecorder()

	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"email":"a@x.com","password":"secret12"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Name is required","param":"name"}]}`, rec.Body.String())
}

func TestLoginHandlerRateLimited(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHandler(svc, &stubLimiter{exceeded: true})
	rec := httptest.NewRecorder()

	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := NewHandler(svc, nil)
	rec := httptest.NewRecorder()

	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"email":"a@x.com","password":"x"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid Credentials"}]}`, rec.Body.String())
}

func TestMeHandler(t *testing.T) {
	svc, _, codec := newTestService(t)
	token, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "a@x.com", Password: "secret12"})
	require.NoError(t, err)
	id, _ := codec.Verify(token)

	h := NewHandler(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	req = req.WithContext(WithUserID(req.Context(), id))
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "argon2id")
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", getClientIP(req))

	// forwarding headers are resolved by the router middleware, not here
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "192.0.2.1", getClientIP(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", getClientIP(req))
}

func TestRegisterHandlerLimiterFailureLetsRequestThrough(t *testing.T) {
	svc, _, codec := newTestService(t)
	limiter := &stubLimiter{
		exceeded:  true,
		checkErr:  errors.New("redis: connection refused"),
		recordErr: errors.New("redis: connection refused"),
	}
	h := NewHandler(svc, limiter)

	body := `{"name":"Ana","email":"a@x.com","password":"secret12"}`
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := codec.Verify(resp.Token)
	assert.NoError(t, err)
	assert.Len(t, limiter.recorded, 1)
}

func TestLoginHandlerLimiterFailureLetsRequestThrough(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "a@x.com", Password: "secret12"})
	require.NoError(t, err)

	h := NewHandler(svc, &stubLimiter{checkErr: errors.New("timeout"), recordErr: errors.New("timeout")})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"email":"a@x.com","password":"secret12"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
}
