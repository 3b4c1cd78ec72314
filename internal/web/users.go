package web

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/repository"
	"github.com/caloria/webadmin/internal/service"
	"github.com/go-chi/chi/v5"
)

// UserHandler renders the user management pages and serves the
// administrative action endpoints.
type UserHandler struct {
	svc      *service.UserAdminService
	renderer *Renderer
	flash    *FlashStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserAdminService, renderer *Renderer, flash *FlashStore) *UserHandler {
	return &UserHandler{svc: svc, renderer: renderer, flash: flash}
}

func filterFromQuery(r *http.Request) repository.UserFilter {
	q := r.URL.Query()
	return repository.UserFilter{
		Status: q.Get("status"),
		Goal:   q.Get("goal"),
		Search: q.Get("search"),
	}
}

// List handles GET /admin/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	list, err := h.svc.List(r.Context(), filterFromQuery(r), page)
	if err != nil {
		h.renderer.RenderError(w, err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "users", Page{
		Title:      "Users — Caloria Admin",
		PageTitle:  "User Management",
		AdminEmail: adminEmail(r),
		Flashes:    h.flash.Pop(w, r),
		Data:       list,
	})
}

// userDetailView adds the presentation-owned payment truncation: only the
// first 10 transactions are shown, with the full count alongside.
type userDetailView struct {
	*service.UserDetail
	ShownPayments []*domain.PaymentTransaction
	TotalPayments int
}

// Detail handles GET /admin/users/{userID}.
func (h *UserHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.renderer.RenderError(w, err)
		return
	}

	shown := detail.Payments
	if len(shown) > 10 {
		shown = shown[:10]
	}

	h.renderer.Render(w, http.StatusOK, "user_detail", Page{
		Title:      fmt.Sprintf("%s — Caloria Admin", detail.User.FullName()),
		PageTitle:  detail.User.FullName(),
		AdminEmail: adminEmail(r),
		Flashes:    h.flash.Pop(w, r),
		Data: userDetailView{
			UserDetail:    detail,
			ShownPayments: shown,
			TotalPayments: len(detail.Payments),
		},
	})
}

// Toggle handles POST /admin/users/{userID}/toggle.
func (h *UserHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")
	nowActive, err := h.svc.ToggleActive(r.Context(), id)
	if err != nil {
		h.flashError(w, r, err, "Could not update the user.")
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return
	}

	state := "deactivated"
	if nowActive {
		state = "activated"
	}
	h.flash.Add(w, r, "success", "User "+state+".")
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// Delete handles POST /admin/users/{userID}/delete.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.flashError(w, r, err, "Could not delete the user.")
		http.Redirect(w, r, Route("admin_users"), http.StatusSeeOther)
		return
	}

	h.flash.Add(w, r, "success", "User deleted.")
	http.Redirect(w, r, Route("admin_users"), http.StatusSeeOther)
}

// Export handles GET /admin/users/export.csv.
func (h *UserHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("caloria_users_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.svc.ExportCSV(r.Context(), w, filterFromQuery(r)); err != nil {
		// Headers are already written; all we can do is log.
		Error(w, err)
	}
}

func (h *UserHandler) flashError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	message := fallback
	if appErr, ok := domain.AsAppError(err); ok {
		message = appErr.Message
	}
	h.flash.Add(w, r, "error", message)
}

// backTo returns the page the action was triggered from, defaulting to the
// user list. Only same-site relative referers are honoured.
func backTo(r *http.Request) string {
	ref, err := r.URL.Parse(r.Referer())
	if err == nil && (ref.Host == "" || ref.Host == r.Host) && ref.Path != "" {
		if ref.RawQuery != "" {
			return ref.Path + "?" + ref.RawQuery
		}
		return ref.Path
	}
	return Route("admin_users")
}
