package web_test

import (
	"testing"

	"github.com/caloria/webadmin/internal/web"
)

func TestRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"index", nil, "/"},
		{"privacy_policy", nil, "/privacy"},
		{"terms_conditions", nil, "/terms"},
		{"admin_login", nil, "/admin/login"},
		{"admin_logout", nil, "/admin/logout"},
		{"admin_dashboard", nil, "/admin"},
		{"admin_users", nil, "/admin/users"},
		{"admin_users", []string{"3"}, "/admin/users?page=3"},
		{"admin_user_detail", []string{"u-1"}, "/admin/users/u-1"},
		{"admin_user_toggle", []string{"u-1"}, "/admin/users/u-1/toggle"},
		{"admin_user_delete", []string{"u-1"}, "/admin/users/u-1/delete"},
		{"admin_users_export", nil, "/admin/users/export.csv"},
		{"admin_system_status", nil, "/admin/system-status"},
		{"admin_live", nil, "/admin/live"},
	}
	for _, tc := range tests {
		if got := web.Route(tc.name, tc.args...); got != tc.expected {
			t.Fatalf("route %s%v: expected %s, got %s", tc.name, tc.args, tc.expected, got)
		}
	}

	if got := web.Route("admin_billing"); got != "/" {
		t.Fatalf("expected unknown route to resolve to /, got %s", got)
	}
}

func TestRouteArglessUserActionsFallBack(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"admin_user_detail", "admin_user_toggle", "admin_user_delete"} {
		if got := web.Route(name); got != "/admin/users" {
			t.Fatalf("expected %s without an id to fall back to the user list, got %s", name, got)
		}
	}
}
