package web

import (
	"net/http"

	"github.com/caloria/webadmin/internal/contextkeys"
	"github.com/caloria/webadmin/internal/service"
)

// DashboardHandler renders the admin dashboard.
type DashboardHandler struct {
	svc      *service.DashboardService
	renderer *Renderer
	flash    *FlashStore
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.DashboardService, renderer *Renderer, flash *FlashStore) *DashboardHandler {
	return &DashboardHandler{svc: svc, renderer: renderer, flash: flash}
}

// Show handles GET /admin.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		h.renderer.RenderError(w, err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "dashboard", Page{
		Title:      "Dashboard — Caloria Admin",
		PageTitle:  "Dashboard",
		AdminEmail: adminEmail(r),
		Flashes:    h.flash.Pop(w, r),
		Data:       overview,
	})
}

func adminEmail(r *http.Request) string {
	if email, ok := r.Context().Value(contextkeys.AdminEmail).(string); ok {
		return email
	}
	return ""
}
