package providers

import (
	"net/http"

	"surveyd/internal/structures"
)

// CorsMiddleware answers preflight requests and sets allow-origin headers for
// the configured origins, so the static survey page can POST from another
// host. An "*" entry allows any origin.
func CorsMiddleware(conf *structures.Config, next http.Handler) http.Handler {
	if !conf.Cors.Enabled {
		return next
	}

	allowAny := false
	allowed := make(map[string]struct{}, len(conf.Cors.Origins))
	for _, origin := range conf.Cors.Origins {
		if origin == "*" {
			allowAny = true
		}
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			if allowAny {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
