package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/devconnector-api/internal/auth"
	"github.com/redmonkez12/devconnector-api/internal/config"
	"github.com/redmonkez12/devconnector-api/internal/httputil"
	"github.com/redmonkez12/devconnector-api/internal/logging"
	"github.com/redmonkez12/devconnector-api/internal/post"
	"github.com/redmonkez12/devconnector-api/internal/profile"
)

// Handlers groups the resource handlers mounted under /api
type Handlers struct {
	Auth    *auth.Handler
	Profile *profile.Handler
	Post    *post.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *auth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.TrustedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", auth.TokenHeader},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300, // 5 minutes
		}))
	}

	r.Use(SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Compress(5))

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleMethodNotAllowed)

	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		logger.Info("swagger UI enabled", "path", "/swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", h.Auth.Register)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/", h.Auth.Login)
			r.With(authMiddleware.RequireAuth).Get("/", h.Auth.Me)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.Profile.List)
			r.Get("/user/{user_id}", h.Profile.ByUser)
			r.Get("/github/{username}", h.Profile.GitHubRepos)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.RequireAuth)
				r.Get("/me", h.Profile.Me)
				r.Post("/", h.Profile.Upsert)
				r.Delete("/", h.Profile.DeleteAccount)
				r.Put("/experience", h.Profile.AddExperience)
				r.Delete("/experience/{exp_id}", h.Profile.DeleteExperience)
				r.Put("/education", h.Profile.AddEducation)
				r.Delete("/education/{edu_id}", h.Profile.DeleteEducation)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/", h.Post.Create)
			r.Get("/", h.Post.List)
			r.Get("/{id}", h.Post.Get)
			r.Delete("/{id}", h.Post.Delete)
			r.Put("/like/{id}", h.Post.Like)
			r.Put("/unlike/{id}", h.Post.Unlike)
			r.Post("/comment/{id}", h.Post.Comment)
			r.Delete("/comment/{id}/{comment_id}", h.Post.DeleteComment)
		})
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
