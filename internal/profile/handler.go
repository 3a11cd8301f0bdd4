package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/redmonkez12/devconnector-api/internal/auth"
	"github.com/redmonkez12/devconnector-api/internal/httputil"
	"github.com/redmonkez12/devconnector-api/internal/logging"
)

// Handler contains HTTP handlers for profile endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Me returns the caller's profile
// @Summary      Current user's profile
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} View
// @Failure      401 {object} httputil.MessageResponse
// @Failure      404 {object} httputil.MessageResponse "There is no profile for this user"
// @Router       /api/profile/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	view, err := h.service.Me(r.Context(), userID)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, view, http.StatusOK)
}

// Upsert creates or updates the caller's profile
// @Summary      Create or update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body UpsertInput true "Profile fields; skills is comma separated"
// @Success      200 {object} Profile
// @Failure      400 {object} httputil.ErrorsResponse
// @Failure      401 {object} httputil.MessageResponse
// @Router       /api/profile [post]
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	var req UpsertInput
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	p, err := h.service.Upsert(r.Context(), userID, req)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// List returns all profiles
// @Summary      List profiles
// @Tags         profile
// @Produce      json
// @Success      200 {array} View
// @Router       /api/profile [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	views, err := h.service.List(r.Context())
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, views, http.StatusOK)
}

// ByUser returns the profile of a given user
// @Summary      Profile by user ID
// @Tags         profile
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} View
// @Failure      404 {object} httputil.MessageResponse "Profile not found"
// @Router       /api/profile/user/{user_id} [get]
func (h *Handler) ByUser(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	view, err := h.service.ByUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, view, http.StatusOK)
}

// DeleteAccount removes the caller's profile and account
// @Summary      Delete profile and user
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Success      200 {object} httputil.MessageResponse
// @Failure      401 {object} httputil.MessageResponse
// @Router       /api/profile [delete]
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondMessage(w, "User deleted", http.StatusOK)
}

// AddExperience adds an experience entry
// @Summary      Add profile experience
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body ExperienceInput true "Experience entry"
// @Success      200 {object} Profile
// @Failure      400 {object} httputil.ErrorsResponse
// @Failure      404 {object} httputil.MessageResponse
// @Router       /api/profile/experience [put]
func (h *Handler) AddExperience(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	var req ExperienceInput
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	p, err := h.service.AddExperience(r.Context(), userID, req)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// DeleteExperience removes an experience entry
// @Summary      Delete profile experience
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Param        exp_id path string true "Experience ID"
// @Success      200 {object} Profile
// @Failure      404 {object} httputil.MessageResponse "Experience not found"
// @Router       /api/profile/experience/{exp_id} [delete]
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	p, err := h.service.DeleteExperience(r.Context(), userID, chi.URLParam(r, "exp_id"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// AddEducation adds an education entry
// @Summary      Add profile education
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body EducationInput true "Education entry"
// @Success      200 {object} Profile
// @Failure      400 {object} httputil.ErrorsResponse
// @Failure      404 {object} httputil.MessageResponse
// @Router       /api/profile/education [put]
func (h *Handler) AddEducation(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	var req EducationInput
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	p, err := h.service.AddEducation(r.Context(), userID, req)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// DeleteEducation removes an education entry
// @Summary      Delete profile education
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Param        edu_id path string true "Education ID"
// @Success      200 {object} Profile
// @Failure      404 {object} httputil.MessageResponse "Education not found"
// @Router       /api/profile/education/{edu_id} [delete]
func (h *Handler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	p, err := h.service.DeleteEducation(r.Context(), userID, chi.URLParam(r, "edu_id"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// GitHubRepos proxies the latest repositories of a GitHub user
// @Summary      GitHub repositories
// @Tags         profile
// @Produce      json
// @Param        username path string true "GitHub username"
// @Success      200 {array} object
// @Failure      404 {object} httputil.MessageResponse "No Github profile found"
// @Router       /api/profile/github/{username} [get]
func (h *Handler) GitHubRepos(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	repos, err := h.service.GitHubRepos(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, repos, http.StatusOK)
}
