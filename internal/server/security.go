package server

import "net/http"

// SecurityConfig controls the hardening applied to every HTTP response.
type SecurityConfig struct {
	// EnableCORS toggles the CORS headers.
	EnableCORS bool
	// AllowedOrigins lists the origins allowed to call the API. The single
	// entry "*" allows any origin.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised to CORS clients.
	AllowedMethods []string
	// MaxOperandDigits bounds the length of each operand accepted by the
	// multiply endpoint. Requests above the bound are rejected before any
	// arithmetic runs.
	MaxOperandDigits int
}

// DefaultSecurityConfig returns the configuration used by NewServer.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:       true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		MaxOperandDigits: 1_000_000,
	}
}

// SecurityMiddleware wraps a handler with security headers, CORS handling,
// and OPTIONS preflight responses.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", joinMethods(config.AllowedMethods))
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

// matchOrigin returns the Access-Control-Allow-Origin value for the given
// request origin, or "" when the origin is not allowed. The wildcard "*"
// matches even when the request carries no Origin header.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return a
		}
	}
	return ""
}

func joinMethods(methods []string) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
