package server

import (
	"net/http"
	"slices"
	"strings"
)

// SecurityConfig controls the headers added by SecurityMiddleware.
type SecurityConfig struct {
	// EnableCORS adds CORS headers for allowed origins.
	EnableCORS bool
	// AllowedOrigins lists the accepted Origin values; "*" accepts all.
	AllowedOrigins []string
	// AllowedMethods is advertised in Access-Control-Allow-Methods.
	AllowedMethods []string
}

// DefaultSecurityConfig allows read-only cross-origin scraping.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}
}

// SecurityMiddleware sets the standard security headers, CORS headers for
// allowed origins, and answers preflight requests with 204.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := allowedOrigin(config.AllowedOrigins, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// allowedOrigin returns the value of Access-Control-Allow-Origin for origin.
func allowedOrigin(allowed []string, origin string) (string, bool) {
	if slices.Contains(allowed, "*") {
		return "*", true
	}
	if origin != "" && slices.Contains(allowed, origin) {
		return origin, true
	}
	return "", false
}
