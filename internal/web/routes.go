package web

import (
	"fmt"
	"log"
)

// Route resolves a named route to its path. Templates use names instead of
// hard-coded paths so the URL scheme lives in one place.
func Route(name string, args ...string) string {
	switch name {
	case "index":
		return "/"
	case "privacy_policy":
		return "/privacy"
	case "terms_conditions":
		return "/terms"
	case "admin_login":
		return "/admin/login"
	case "admin_logout":
		return "/admin/logout"
	case "admin_dashboard":
		return "/admin"
	case "admin_users":
		if len(args) > 0 {
			return "/admin/users?page=" + args[0]
		}
		return "/admin/users"
	case "admin_user_detail":
		if len(args) != 1 {
			log.Printf("route admin_user_detail needs a user id")
			return "/admin/users"
		}
		return "/admin/users/" + args[0]
	case "admin_user_toggle":
		if len(args) != 1 {
			log.Printf("route admin_user_toggle needs a user id")
			return "/admin/users"
		}
		return fmt.Sprintf("/admin/users/%s/toggle", args[0])
	case "admin_user_delete":
		if len(args) != 1 {
			log.Printf("route admin_user_delete needs a user id")
			return "/admin/users"
		}
		return fmt.Sprintf("/admin/users/%s/delete", args[0])
	case "admin_users_export":
		return "/admin/users/export.csv"
	case "admin_system_status":
		return "/admin/system-status"
	case "admin_live":
		return "/admin/live"
	}
	log.Printf("unknown route name %q", name)
	return "/"
}
