package ws

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/caloria/webadmin/internal/service"
	"github.com/caloria/webadmin/internal/web"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin admin page; the session cookie is the gate.
		return true
	},
}

// statsFrame is one push on the live stats stream.
type statsFrame struct {
	Type  string                 `json:"type"`
	Stats service.DashboardStats `json:"stats"`
	At    string                 `json:"at"`
}

// LiveStatsHandler streams dashboard stats to connected admin pages on a
// fixed interval. This replaces page-reload polling: the contract is an
// explicit interval plus cancellation when the client goes away.
type LiveStatsHandler struct {
	stats    *service.DashboardService
	auth     *service.AuthService
	interval time.Duration
}

// NewLiveStatsHandler creates a new LiveStatsHandler.
func NewLiveStatsHandler(stats *service.DashboardService, auth *service.AuthService) *LiveStatsHandler {
	return &LiveStatsHandler{
		stats:    stats,
		auth:     auth,
		interval: 15 * time.Second,
	}
}

// Handle upgrades GET /admin/live to a WebSocket and pushes stat frames
// until the client disconnects.
func (h *LiveStatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(web.SessionCookie)
	if err != nil || cookie.Value == "" {
		http.Error(w, "session required", http.StatusUnauthorized)
		return
	}
	claims, err := h.auth.VerifyToken(cookie.Value)
	if err != nil {
		http.Error(w, "invalid session", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("live stats connected (admin: %s)", claims.Email)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader goroutine: the client sends nothing meaningful, but reading is
	// how we learn about disconnects.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := h.push(ctx, conn); err != nil {
		return
	}
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := h.push(ctx, conn); err != nil {
				return
			}
		}
	}
}

func (h *LiveStatsHandler) push(ctx context.Context, conn *websocket.Conn) error {
	stats, err := h.stats.Stats(ctx)
	if err != nil {
		log.Printf("live stats collection failed: %v", err)
		return nil // transient; keep the connection
	}
	frame := statsFrame{
		Type:  "stats",
		Stats: stats,
		At:    time.Now().Format(time.RFC3339),
	}
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(frame)
}
