package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CaseInsensitivePaths lowercases the path chi routes on, so /API/Requirements matches
// /api/requirements. r.URL is left untouched for logging. Every registered route must be
// lowercase.
func CaseInsensitivePaths(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		path := r.URL.Path
		if rctx != nil && rctx.RoutePath != "" {
			path = rctx.RoutePath
		}
		if lower := strings.ToLower(path); lower != path {
			if rctx != nil {
				rctx.RoutePath = lower
			} else {
				r.URL.Path = lower
			}
		}
		next.ServeHTTP(w, r)
	})
}
