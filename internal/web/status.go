package web

import (
	"net/http"
	"runtime"
	"time"

	"github.com/caloria/webadmin/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StatusHandler serves the health endpoint and the system status page.
type StatusHandler struct {
	db        *pgxpool.Pool
	cache     *repository.StatsCache
	renderer  *Renderer
	flash     *FlashStore
	startedAt time.Time
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(db *pgxpool.Pool, cache *repository.StatsCache, renderer *Renderer, flash *FlashStore) *StatusHandler {
	return &StatusHandler{
		db:        db,
		cache:     cache,
		renderer:  renderer,
		flash:     flash,
		startedAt: time.Now(),
	}
}

func (h *StatusHandler) checks(r *http.Request) (map[string]string, bool) {
	ctx := r.Context()
	checks := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = "error"
		healthy = false
	}
	if !h.cache.Enabled() {
		checks["cache"] = "disabled"
	} else if err := h.cache.Ping(ctx); err != nil {
		checks["cache"] = "error"
	}
	return checks, healthy
}

// Health handles GET /health.
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks, healthy := h.checks(r)

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	JSON(w, code, map[string]interface{}{
		"status":   status,
		"database": checks["database"],
		"cache":    checks["cache"],
	})
}

// Show handles GET /admin/system-status.
func (h *StatusHandler) Show(w http.ResponseWriter, r *http.Request) {
	checks, healthy := h.checks(r)

	h.renderer.Render(w, http.StatusOK, "system_status", Page{
		Title:      "System Status — Caloria Admin",
		PageTitle:  "System Status",
		AdminEmail: adminEmail(r),
		Flashes:    h.flash.Pop(w, r),
		Data: map[string]any{
			"Checks":    checks,
			"Healthy":   healthy,
			"Uptime":    time.Since(h.startedAt).Round(time.Second).String(),
			"GoVersion": runtime.Version(),
			"StartedAt": h.startedAt,
		},
	})
}
