package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"chitragupta-dashboard/internal/config"
	"chitragupta-dashboard/internal/middleware"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		Environment:       "test",
		SiteName:          "Chitragupta",
		AdminName:         "Admin User",
		AdminEmail:        "admin@example.com",
		CORSOrigins:       []string{"http://localhost:5173"},
		RateLimitRequests: 1000,
		RateLimitWindow:   60,
		EnableMetrics:     true,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	application, err := New(cfg, Options{})
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })
	return application
}

func serve(app *Application, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	app.Router().ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

func TestApplicationServesShellPages(t *testing.T) {
	application := newTestApp(t, testConfig())

	cases := []struct {
		target string
		status int
		active bool
	}{
		{target: "/", status: http.StatusOK, active: true},
		{target: "/repositories", status: http.StatusOK, active: true},
		{target: "/secrets", status: http.StatusOK, active: true},
		{target: "/unknown", status: http.StatusNotFound},
		{target: "/repositories/123", status: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			recorder := serve(application, http.MethodGet, tc.target)
			if recorder.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, recorder.Code)
			}

			count := strings.Count(recorder.Body.String(), `aria-current="page"`)
			if tc.active && count != 1 {
				t.Fatalf("expected one active entry, got %d", count)
			}
			if !tc.active && count != 0 {
				t.Fatalf("expected no active entry, got %d", count)
			}
			if recorder.Header().Get(middleware.RequestIDHeader) == "" {
				t.Fatalf("expected request id header")
			}
			if recorder.Header().Get("Content-Security-Policy") == "" {
				t.Fatalf("expected security headers")
			}
		})
	}
}

func TestApplicationAmbientEndpoints(t *testing.T) {
	application := newTestApp(t, testConfig())

	if recorder := serve(application, http.MethodGet, "/health"); recorder.Code != http.StatusOK {
		t.Fatalf("expected healthy response, got %d", recorder.Code)
	}

	if recorder := serve(application, http.MethodGet, "/static/app.css"); recorder.Code != http.StatusOK {
		t.Fatalf("expected stylesheet, got %d", recorder.Code)
	}

	serve(application, http.MethodGet, "/secrets")
	recorder := serve(application, http.MethodGet, "/metrics")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected metrics endpoint, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "chitragupta_dashboard_shell_renders_total") {
		t.Fatalf("expected shell render metric to be exported")
	}

	recorder = serve(application, http.MethodGet, "/api/v1/navigation?path=/secrets")
	if recorder.Code != http.StatusOK || !strings.Contains(recorder.Body.String(), `"active":"/secrets"`) {
		t.Fatalf("unexpected navigation response %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestApplicationCORSPreflight(t *testing.T) {
	application := newTestApp(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/navigation", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	recorder := httptest.NewRecorder()
	application.Router().ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestApplicationMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.EnableMetrics = false
	application := newTestApp(t, cfg)

	if recorder := serve(application, http.MethodGet, "/metrics"); recorder.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics to be absent, got %d", recorder.Code)
	}
}

func TestApplicationNavigationFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "navigation.yaml")
	doc := "entries:\n  - {label: Overview, icon: layout-dashboard, path: /}\n  - {label: Vault, icon: shield-alert, path: /secrets}\n"
	if err := os.WriteFile(filename, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write navigation file: %v", err)
	}

	cfg := testConfig()
	cfg.NavigationFile = filename
	application := newTestApp(t, cfg)

	if application.Navigation().Len() != 2 {
		t.Fatalf("expected two entries from file, got %d", application.Navigation().Len())
	}
	body := serve(application, http.MethodGet, "/secrets").Body.String()
	if !strings.Contains(body, "Vault") || strings.Contains(body, `data-nav-path="/repositories"`) {
		t.Fatalf("expected sidebar from navigation file, body:\n%s", body)
	}
}

func TestApplicationRejectsInvalidNavigationFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "navigation.yaml")
	doc := "entries:\n  - {label: A, path: /a}\n  - {label: B, path: /a}\n"
	if err := os.WriteFile(filename, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write navigation file: %v", err)
	}

	cfg := testConfig()
	cfg.NavigationFile = filename
	if _, err := New(cfg, Options{}); err == nil {
		t.Fatalf("expected duplicate paths to abort startup")
	}
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(nil, Options{}); err == nil {
		t.Fatalf("expected error without config")
	}
}
