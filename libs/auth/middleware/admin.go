package middleware

import (
	"net/http"
)

// AdminMiddleware rejects callers whose identity lacks the admin flag.
// It must run after AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, `{"error":"authentication required"}`)
			return
		}

		if !identity.IsAdmin {
			writeError(w, http.StatusForbidden, `{"error":"insufficient permissions"}`)
			return
		}

		next.ServeHTTP(w, r)
	})
}
