package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caloria/webadmin/internal/contextkeys"
	"github.com/caloria/webadmin/internal/middleware"
)

func TestAdminOnly(t *testing.T) {
	t.Parallel()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.AdminOnly(next)

	req := httptest.NewRequest("GET", "/admin", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextkeys.AdminRole, "admin"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected admin role to pass through, got %d", rec.Code)
	}
}

func TestAdminOnlyRejectsMissingOrWrongRole(t *testing.T) {
	t.Parallel()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run without the admin role")
	})
	h := middleware.AdminOnly(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/admin", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without a role, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admin access required") {
		t.Fatalf("expected forbidden message, got %q", rec.Body.String())
	}

	req := httptest.NewRequest("GET", "/admin", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextkeys.AdminRole, "viewer"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a non-admin role, got %d", rec.Code)
	}
}
