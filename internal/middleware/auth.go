package middleware

import (
	"context"
	"net/http"

	"github.com/caloria/webadmin/internal/contextkeys"
	"github.com/caloria/webadmin/internal/service"
	"github.com/caloria/webadmin/internal/web"
)

// SessionAuth authenticates admin pages via the session cookie. Requests
// without a valid session are redirected to the login page.
func SessionAuth(authSvc *service.AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(web.SessionCookie)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, web.Route("admin_login"), http.StatusSeeOther)
				return
			}

			claims, err := authSvc.VerifyToken(cookie.Value)
			if err != nil {
				http.Redirect(w, r, web.Route("admin_login"), http.StatusSeeOther)
				return
			}

			// Store admin identity in context using typed keys
			ctx := context.WithValue(r.Context(), contextkeys.AdminID, claims.Sub)
			ctx = context.WithValue(ctx, contextkeys.AdminEmail, claims.Email)
			ctx = context.WithValue(ctx, contextkeys.AdminRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
