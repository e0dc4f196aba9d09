package handlers

import (
	"errors"
	"net/http"

	"github.com/socialsphere/app/internal/service"
	"github.com/socialsphere/app/internal/transport/http/middleware"
	"github.com/socialsphere/app/internal/transport/http/render"
	"github.com/socialsphere/app/internal/upload"
)

type ProfileHandler struct {
	profile  *service.ProfileService
	intake   *upload.Intake
	renderer *render.Renderer
}

func NewProfileHandler(profile *service.ProfileService, intake *upload.Intake, renderer *render.Renderer) *ProfileHandler {
	return &ProfileHandler{
		profile:  profile,
		intake:   intake,
		renderer: renderer,
	}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, posts, err := h.profile.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		internalError(w, h.renderer, "profile", err)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "profile.html", map[string]any{
		"User":   user,
		"Posts":  posts,
		"UserID": user.ID,
	})
}

func (h *ProfileHandler) UploadPage(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	h.renderer.HTML(w, http.StatusOK, "upload-profile.html", map[string]any{"Email": claims.Email})
}

func (h *ProfileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Cap the whole request body; the intake enforces the exact per-file
	// limit while streaming. The extra megabyte covers multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxFileSize+1<<20)

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			http.Error(w, "File exceeds the 5 MB limit", http.StatusRequestEntityTooLarge)
		case errors.Is(err, http.ErrMissingFile):
			http.Error(w, "No file was uploaded. Please select an image.", http.StatusBadRequest)
		default:
			http.Error(w, "Error parsing form", http.StatusBadRequest)
		}
		return
	}
	defer file.Close()

	filename, err := h.intake.Store(file, header)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			http.Error(w, "Only image files are allowed", http.StatusUnsupportedMediaType)
		case errors.Is(err, upload.ErrTooLarge):
			http.Error(w, "File exceeds the 5 MB limit", http.StatusRequestEntityTooLarge)
		default:
			internalError(w, h.renderer, "upload", err)
		}
		return
	}

	if err := h.profile.SetPicture(r.Context(), userID, filename); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		internalError(w, h.renderer, "upload", err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
