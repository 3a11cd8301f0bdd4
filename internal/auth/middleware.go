package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
	"github.com/redmonkez12/devconnector-api/internal/httputil"
	"github.com/redmonkez12/devconnector-api/internal/logging"
)

// TokenHeader carries the session token on every authenticated call.
const TokenHeader = "x-auth-token"

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const UserIDContextKey ContextKey = "user_id"

var (
	ErrMissingCredential = apperr.New(apperr.Unauthenticated, "No token, authorization denied")
	ErrInvalidCredential = apperr.New(apperr.Unauthenticated, "Token is not valid")
)

// Middleware gates requests on a valid session token
type Middleware struct {
	tokenService TokenService
}

func NewMiddleware(tokenService TokenService) *Middleware {
	return &Middleware{tokenService: tokenService}
}

// Authenticate resolves a raw header value into the caller identity.
func (m *Middleware) Authenticate(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", ErrMissingCredential
	}

	subject, err := m.tokenService.Verify(token)
	if err != nil {
		return "", ErrInvalidCredential
	}

	return subject, nil
}

// RequireAuth rejects the request unless it carries a valid token. The caller identity is
// stored on the request context for downstream handlers.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.GetLoggerFromContext(r.Context())

		userID, err := m.Authenticate(r.Header.Get(TokenHeader))
		if err != nil {
			if errors.Is(err, ErrMissingCredential) {
				logger.Warn("missing credential")
			} else {
				logger.Warn("invalid credential")
			}
			httputil.RespondAppError(w, logger, err)
			return
		}

		ctx := WithUserID(r.Context(), userID)
		ctx = logging.WithLogger(ctx, logger.WithFields(map[string]any{"user_id": userID}))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUserID returns a copy of ctx carrying the caller identity
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}
