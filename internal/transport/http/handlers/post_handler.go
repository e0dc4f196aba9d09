package handlers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/socialsphere/app/internal/service"
	"github.com/socialsphere/app/internal/transport/http/middleware"
	"github.com/socialsphere/app/internal/transport/http/render"
)

type PostHandler struct {
	posts    *service.PostService
	renderer *render.Renderer
}

func NewPostHandler(posts *service.PostService, renderer *render.Renderer) *PostHandler {
	return &PostHandler{
		posts:    posts,
		renderer: renderer,
	}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	userID, err := sessionUserID(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := h.posts.Create(r.Context(), userID, r.FormValue("content")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		internalError(w, h.renderer, "create post", err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(r.PathValue("postId"))
	if err != nil {
		h.renderer.NotFound(w)
		return
	}

	userID, err := sessionUserID(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.posts.ToggleLike(r.Context(), postID, userID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		internalError(w, h.renderer, "toggle like", err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *PostHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(r.PathValue("postId"))
	if err != nil {
		h.renderer.NotFound(w)
		return
	}

	post, err := h.posts.Get(r.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		internalError(w, h.renderer, "edit page", err)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "edit.html", map[string]any{"Post": post})
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	postID, err := primitive.ObjectIDFromHex(r.PathValue("postId"))
	if err != nil {
		h.renderer.NotFound(w)
		return
	}

	if err := h.posts.UpdateContent(r.Context(), postID, r.FormValue("content")); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		internalError(w, h.renderer, "update post", err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// sessionUserID resolves the authenticated user's object id from the
// session claims attached by the guard.
func sessionUserID(r *http.Request) (primitive.ObjectID, error) {
	claims := middleware.GetClaims(r.Context())
	return primitive.ObjectIDFromHex(claims.UserID)
}
