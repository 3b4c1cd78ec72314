package web_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/service"
	"github.com/caloria/webadmin/internal/web"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		n        int
		expected string
	}{
		{"short value passes through", "5511999887766", 15, "5511999887766"},
		{"exact length passes through", "123456789012345", 15, "123456789012345"},
		{"long value cut at 15", "123456789012345678901234567890", 15, "123456789012345…"},
		{"long value cut at 20", "123456789012345678901234567890", 20, "12345678901234567890…"},
		{"multi-byte runes", "cafézinho com pão de queijo", 9, "cafézinho…"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := web.Truncate(tc.in, tc.n); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestRendererUsersPageEmptyState(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "users", web.Page{
		Title:     "Users — Caloria Admin",
		PageTitle: "User Management",
		Data: &service.UserListPage{
			Pagination: domain.Pagination{Page: 1, PerPage: 20},
		},
	})

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No users yet") {
		t.Fatalf("expected empty state, got:\n%s", rec.Body.String())
	}
}

func TestRendererUsersPageTruncatesWhatsAppID(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "users", web.Page{
		Title:     "Users — Caloria Admin",
		PageTitle: "User Management",
		Data: &service.UserListPage{
			Users: []*domain.User{{
				ID:                 "u-1",
				FirstName:          "Maria",
				LastName:           "Silva",
				WhatsAppID:         "123456789012345678901234567890",
				SubscriptionStatus: domain.SubFree,
				IsActive:           true,
			}},
			Pagination: domain.Pagination{Page: 1, PerPage: 20, Total: 1},
		},
	})

	body := rec.Body.String()
	if !strings.Contains(body, "12345678901234567890…") {
		t.Fatalf("expected truncated whatsapp id, got:\n%s", body)
	}
	if strings.Contains(body, "123456789012345678901234567890") {
		t.Fatalf("full whatsapp id should not appear in the list")
	}
}

func TestRendererDashboardEmptyStates(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "dashboard", web.Page{
		Title:     "Dashboard — Caloria Admin",
		PageTitle: "Dashboard",
		Data:      &service.DashboardOverview{},
	})

	body := rec.Body.String()
	for _, want := range []string{"No users yet", "No Food Logs", "No activity yet"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected empty state %q, got:\n%s", want, body)
		}
	}
	if strings.Contains(body, "<table") {
		t.Fatalf("expected no tables on an empty dashboard")
	}
}

func TestRenderErrorUsesAppErrorMetadata(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	r.RenderError(rec, domain.ErrNotFound("user not found"))

	if rec.Code != 404 {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "user not found") {
		t.Fatalf("expected error message in body, got:\n%s", rec.Body.String())
	}
}

func newTestRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}
