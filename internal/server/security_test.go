package server

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

func TestDefaultSecurityConfig(t *testing.T) {
	t.Parallel()
	config := DefaultSecurityConfig()
	if !config.EnableCORS {
		t.Error("EnableCORS = false, want true")
	}
	if !slices.Equal(config.AllowedOrigins, []string{"*"}) {
		t.Errorf("AllowedOrigins = %v", config.AllowedOrigins)
	}
	if !slices.Equal(config.AllowedMethods, []string{http.MethodGet, http.MethodOptions}) {
		t.Errorf("AllowedMethods = %v", config.AllowedMethods)
	}
}

func TestSecurityMiddleware_Headers(t *testing.T) {
	t.Parallel()
	called := false
	handler := SecurityMiddleware(DefaultSecurityConfig(), func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	if !called {
		t.Fatal("next handler not called")
	}
	want := map[string]string{
		"X-Content-Type-Options":      "nosniff",
		"X-Frame-Options":             "DENY",
		"X-XSS-Protection":            "1; mode=block",
		"Referrer-Policy":             "strict-origin-when-cross-origin",
		"Content-Security-Policy":     "default-src 'none'; frame-ancestors 'none'",
		"Access-Control-Allow-Origin": "*",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}

func TestSecurityMiddleware_CORS(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		config     SecurityConfig
		origin     string
		wantOrigin string
	}{
		{"wildcard", DefaultSecurityConfig(), "https://grafana.example", "*"},
		{"listed origin", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"https://grafana.example"}}, "https://grafana.example", "https://grafana.example"},
		{"unlisted origin", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"https://grafana.example"}}, "https://evil.example", ""},
		{"no origin header", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"https://grafana.example"}}, "", ""},
		{"disabled", SecurityConfig{AllowedOrigins: []string{"*"}}, "https://grafana.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := SecurityMiddleware(tt.config, func(w http.ResponseWriter, r *http.Request) {})
			req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.wantOrigin != "" && rec.Header().Get("Access-Control-Max-Age") != "86400" {
				t.Error("Access-Control-Max-Age not set")
			}
		})
	}
}

func TestSecurityMiddleware_Preflight(t *testing.T) {
	t.Parallel()
	called := false
	handler := SecurityMiddleware(DefaultSecurityConfig(), func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodOptions, "/metrics", http.NoBody))

	if called {
		t.Error("preflight reached the next handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, OPTIONS" {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
}
