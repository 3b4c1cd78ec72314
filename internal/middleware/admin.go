package middleware

import (
	"net/http"

	"github.com/caloria/webadmin/internal/contextkeys"
	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/web"
)

// AdminOnly ensures the session carries the 'admin' role.
// Must be used AFTER SessionAuth which sets contextkeys.AdminRole in context.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := r.Context().Value(contextkeys.AdminRole).(string)
		if !ok || role != "admin" {
			web.Error(w, domain.ErrForbidden("admin access required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
