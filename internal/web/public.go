package web

import "net/http"

// PublicHandler renders the marketing and legal pages. They carry no
// dynamic data beyond shared link targets.
type PublicHandler struct {
	renderer *Renderer
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(renderer *Renderer) *PublicHandler {
	return &PublicHandler{renderer: renderer}
}

// Index handles GET /.
func (h *PublicHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "index", Page{
		Title: "Caloria — Nutrition tracking on WhatsApp",
	})
}

// Privacy handles GET /privacy.
func (h *PublicHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "privacy", Page{
		Title: "Privacy Policy — Caloria",
	})
}

// Terms handles GET /terms.
func (h *PublicHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "terms", Page{
		Title: "Terms of Service — Caloria",
	})
}
