package handlers

import (
	"log"
	"net/http"

	"github.com/socialsphere/app/internal/transport/http/render"
)

// internalError logs an unexpected failure and renders the generic 500
// page. Expected failures are mapped to their own responses by handlers.
func internalError(w http.ResponseWriter, r *render.Renderer, scope string, err error) {
	log.Printf("ERROR %s: %v", scope, err)
	r.Error(w)
}
