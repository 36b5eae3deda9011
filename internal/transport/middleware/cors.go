package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/freshkeep-backend/internal/config"
)

// exposedHeaders are readable by browser clients: the request id for support
// tickets, Retry-After on 429 and the export file name.
const exposedHeaders = "X-Request-Id, Retry-After, Content-Disposition"

// CORS echoes allowed origins and answers every OPTIONS request as a preflight.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if origin := r.Header.Get("Origin"); origin != "" && originAllowed(origin, origins) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}
