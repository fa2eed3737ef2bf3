package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aouiniamine/hello-service/internal/config"
	"github.com/aouiniamine/hello-service/internal/features/greeting"
	"github.com/aouiniamine/hello-service/internal/features/health"
	"github.com/aouiniamine/hello-service/internal/features/metrics"
	"github.com/aouiniamine/hello-service/pkg/response"
	"github.com/labstack/echo/v4"
)

func testConfig(metricsEnabled bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: "5000"},
		Metrics: config.MetricsConfig{
			Enabled:   metricsEnabled,
			Namespace: "hello_service",
		},
		Env: "test",
	}
}

func setupTestServer(t *testing.T, metricsEnabled bool) *Server {
	t.Helper()
	srv := New(testConfig(metricsEnabled))
	srv.RegisterRoutes(greeting.New().RegisterRoutes)
	srv.RegisterRoutes(health.New().RegisterRoutes)
	if reg := srv.Registry(); reg != nil {
		srv.RegisterRoutes(metrics.New(reg).RegisterRoutes)
	}
	return srv
}

func do(srv *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestAddr(t *testing.T) {
	srv := New(testConfig(false))
	if got := srv.Addr(); got != "0.0.0.0:5000" {
		t.Errorf("expected 0.0.0.0:5000, got %s", got)
	}
}

func TestRoutes(t *testing.T) {
	srv := setupTestServer(t, false)

	tests := []struct {
		path        string
		contentType string
		body        map[string]string
		text        string
	}{
		{path: "/", contentType: echo.MIMETextPlain, text: "Hello, World!"},
		{path: "/health", contentType: echo.MIMEApplicationJSON, body: map[string]string{"status": "healthy", "message": "Service is running"}},
		{path: "/ready", contentType: echo.MIMEApplicationJSON, body: map[string]string{"status": "ready", "message": "Service is ready to accept traffic"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(srv, http.MethodGet, tt.path)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("expected content type %s, got %q", tt.contentType, ct)
			}
			if rec.Header().Get(echo.HeaderXRequestID) == "" {
				t.Error("expected a request id header")
			}

			if tt.body == nil {
				if rec.Body.String() != tt.text {
					t.Errorf("expected body %q, got %q", tt.text, rec.Body.String())
				}
				return
			}

			var got map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if len(got) != len(tt.body) {
				t.Fatalf("expected %v, got %v", tt.body, got)
			}
			for k, v := range tt.body {
				if got[k] != v {
					t.Errorf("%s: expected %q, got %q", k, v, got[k])
				}
			}
		})
	}
}

func TestRoutes_Idempotent(t *testing.T) {
	srv := setupTestServer(t, false)

	for _, path := range []string{"/", "/health", "/ready"} {
		first := do(srv, http.MethodGet, path).Body.Bytes()
		for i := 0; i < 5; i++ {
			if next := do(srv, http.MethodGet, path).Body.Bytes(); !bytes.Equal(first, next) {
				t.Errorf("%s: response changed between requests: %q vs %q", path, first, next)
			}
		}
	}
}

func TestNotFound(t *testing.T) {
	srv := setupTestServer(t, false)

	rec := do(srv, http.MethodGet, "/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Error == nil || body.Error.Code != "NOT_FOUND" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := setupTestServer(t, false)

	for _, path := range []string{"/", "/health", "/ready"} {
		rec := do(srv, http.MethodDelete, path)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", path, rec.Code)
			continue
		}

		var body response.Response
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Error == nil || body.Error.Code != "METHOD_NOT_ALLOWED" {
			t.Errorf("%s: unexpected body: %s", path, rec.Body.String())
		}
	}
}

func TestMetrics(t *testing.T) {
	srv := setupTestServer(t, true)

	do(srv, http.MethodGet, "/health")
	do(srv, http.MethodGet, "/health")

	rec := do(srv, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	want := `hello_service_http_requests_total{method="GET",route="/health",status="200"} 2`
	if !strings.Contains(body, want) {
		t.Errorf("expected metrics to contain %q, got:\n%s", want, body)
	}
	if !strings.Contains(body, "hello_service_http_request_duration_seconds") {
		t.Error("expected request duration histogram in metrics output")
	}
}

func TestMetricsDisabled(t *testing.T) {
	srv := setupTestServer(t, false)

	if srv.Registry() != nil {
		t.Fatal("expected no registry when metrics are disabled")
	}
	if rec := do(srv, http.MethodGet, "/metrics"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
