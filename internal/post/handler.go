package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/redmonkez12/devconnector-api/internal/auth"
	"github.com/redmonkez12/devconnector-api/internal/httputil"
	"github.com/redmonkez12/devconnector-api/internal/logging"
)

// Handler contains HTTP handlers for post endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TextRequest is the body of a new post or comment
type TextRequest struct {
	Text string `json:"text"`
}

// Create publishes a post
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        request body TextRequest true "Post text"
// @Success      200 {object} Post
// @Failure      400 {object} httputil.ErrorsResponse
// @Failure      401 {object} httputil.MessageResponse
// @Router       /api/posts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	var req TextRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	p, err := h.service.Create(r.Context(), userID, req.Text)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// List returns all posts
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Success      200 {array} Post
// @Failure      401 {object} httputil.MessageResponse
// @Router       /api/posts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	posts, err := h.service.List(r.Context())
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, posts, http.StatusOK)
}

// Get returns a single post
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Post ID"
// @Success      200 {object} Post
// @Failure      404 {object} httputil.MessageResponse "Post not found"
// @Router       /api/posts/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// Delete removes a post owned by the caller
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Post ID"
// @Success      200 {object} httputil.MessageResponse
// @Failure      401 {object} httputil.MessageResponse "User not authorized"
// @Failure      404 {object} httputil.MessageResponse "Post not found"
// @Router       /api/posts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondMessage(w, "Post removed", http.StatusOK)
}

// Like likes a post
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Post ID"
// @Success      200 {array} Like
// @Failure      400 {object} httputil.MessageResponse "Post already liked"
// @Failure      404 {object} httputil.MessageResponse "Post not found"
// @Router       /api/posts/like/{id} [put]
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	likes, err := h.service.Like(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, likes, http.StatusOK)
}

// Unlike removes the caller's like
// @Summary      Unlike a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Post ID"
// @Success      200 {array} Like
// @Failure      400 {object} httputil.MessageResponse "Post has not yet been liked"
// @Failure      404 {object} httputil.MessageResponse "Post not found"
// @Router       /api/posts/unlike/{id} [put]
func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	likes, err := h.service.Unlike(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, likes, http.StatusOK)
}

// Comment adds a comment to a post
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Post ID"
// @Param        request body TextRequest true "Comment text"
// @Success      200 {array} Comment
// @Failure      400 {object} httputil.ErrorsResponse
// @Failure      404 {object} httputil.MessageResponse "Post not found"
// @Router       /api/posts/comment/{id} [post]
func (h *Handler) Comment(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	var req TextRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	comments, err := h.service.Comment(r.Context(), userID, chi.URLParam(r, "id"), req.Text)
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, comments, http.StatusOK)
}

// DeleteComment removes a comment written by the caller
// @Summary      Delete a comment
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id path string true "Post ID"
// @Param        comment_id path string true "Comment ID"
// @Success      200 {array} Comment
// @Failure      401 {object} httputil.MessageResponse "User not authorized"
// @Failure      404 {object} httputil.MessageResponse "Comment does not exist"
// @Router       /api/posts/comment/{id}/{comment_id} [delete]
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	comments, err := h.service.DeleteComment(r.Context(), userID, chi.URLParam(r, "id"), chi.URLParam(r, "comment_id"))
	if err != nil {
		httputil.RespondAppError(w, logger, err)
		return
	}

	httputil.RespondJSON(w, comments, http.StatusOK)
}
