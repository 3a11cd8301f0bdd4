package auth

import (
	"net"
	"net/http"

	"github.com/redmonkez12/devconnector-api/internal/httputil"
	"github.com/redmonkez12/devconnector-api/internal/logging"
)

// Handler contains HTTP handlers for account endpoints
type Handler struct {
	service     *Service
	rateLimiter RateLimiter
}

func NewHandler(service *Service, rateLimiter RateLimiter) *Handler {
	return &Handler{
		service:     service,
		rateLimiter: rateLimiter,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued session token
type TokenResponse struct {
	Token string `json:"token"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create an account and receive a session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200 {object} TokenResponse
// @Failure      400 {object} httputil.ErrorsResponse "Validation error or user already exists"
// @Failure      429 {object} httputil.MessageResponse "Too many requests"
// @Failure      500 {object} httputil.MessageResponse "Internal server error"
// @Router       /api/users [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.limited(w, r, "register") {
		return
	}

	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	token, err := h.service.Register(r.Context(), RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

// Login handles user login
// @Summary      Authenticate user
// @Description  Exchange email and password for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} TokenResponse
// @Failure      400 {object} httputil.ErrorsResponse "Validation error or invalid credentials"
// @Failure      429 {object} httputil.MessageResponse "Too many requests"
// @Failure      500 {object} httputil.MessageResponse "Internal server error"
// @Router       /api/auth [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.limited(w, r, "login") {
		return
	}

	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	logger.Info("user logged in")
	httputil.RespondJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

// Me returns the authenticated user
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} user.User
// @Failure      401 {object} httputil.MessageResponse
// @Router       /api/auth [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := GetUserIDFromContext(r.Context())

	u, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, u, http.StatusOK)
}

// limited checks and records the per-IP counter. Limiter failures let the request through.
func (h *Handler) limited(w http.ResponseWriter, r *http.Request, purpose string) bool {
	if h.rateLimiter == nil {
		return false
	}
	logger := logging.GetLoggerFromContext(r.Context())
	ip := getClientIP(r)

	exceeded, err := h.rateLimiter.CheckIPRateLimitWithPurpose(r.Context(), ip, purpose)
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded", "ip", ip, "purpose", purpose)
		httputil.RespondMessage(w, "Too many requests, please try again later", http.StatusTooManyRequests)
		return true
	}

	if err := h.rateLimiter.RecordIPRequestWithPurpose(r.Context(), ip, purpose); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}
	return false
}

// getClientIP extracts the client IP address from the request. Proxy headers are resolved
// once by the router's RealIP middleware, so only RemoteAddr is read here.
func getClientIP(r *http.Request) string {
	// RemoteAddr format is "IP:port", extract just the IP
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
