package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/dailydiet-backend/internal/config"
)

// CORS answers browser preflights and decorates cross-origin responses.
// Only requests carrying an allowed Origin get Access-Control-* headers.
// A preflight is an OPTIONS request with Access-Control-Request-Method; other
// OPTIONS requests reach the router like any other method.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := splitList(cfg.AllowedOrigins)
	wildcard := allowed["*"]
	exposed := cfg.ExposedHeaders
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin == "" || !(wildcard || allowed[origin]) {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if exposed != "" {
				h.Set("Access-Control-Expose-Headers", exposed)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func splitList(s string) map[string]bool {
	set := make(map[string]bool)
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = true
		}
	}
	return set
}
