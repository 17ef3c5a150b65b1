package middleware

import (
	"net/http"

	"github.com/zatekoja/arovia/web/internal/application/sessions"
)

// SessionMiddleware resolves the caller's session from its cookie, starting a
// new one when the cookie is missing or unknown.
func SessionMiddleware(manager *sessions.Manager, cookieName string, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(cookieName); err == nil {
				id = cookie.Value
			}

			session, created := manager.GetOrCreate(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    session.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(sessions.NewContext(r.Context(), session)))
		})
	}
}
