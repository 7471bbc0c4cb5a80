package httpmiddleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig controls the Cross-Origin Resource Sharing headers emitted for
// browser clients.
type CORSConfig struct {
	// AllowOrigins lists allowed origins. "*" allows any origin.
	AllowOrigins []string
	// AllowHeaders lists headers allowed in preflight requests.
	AllowHeaders []string
	// AllowCredentials permits cookies and authorization headers.
	AllowCredentials bool
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// CORS returns a middleware answering preflight requests and attaching CORS
// headers to every response with an allowed Origin.
func CORS(cfg CORSConfig) Middleware {
	allowAll := slices.Contains(cfg.AllowOrigins, "*")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed := ""
			switch {
			case allowAll && cfg.AllowCredentials:
				// "*" is invalid with credentials; echo the origin instead.
				allowed = origin
			case allowAll:
				allowed = "*"
			case slices.Contains(cfg.AllowOrigins, origin):
				allowed = origin
			}
			if allowed == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			h.Add("Vary", "Origin")
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				if allowHeaders != "" {
					h.Set("Access-Control-Allow-Headers", allowHeaders)
				}
				if cfg.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
