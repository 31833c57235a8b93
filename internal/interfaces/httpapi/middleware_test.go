package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	t.Parallel()

	h := CORS([]string{"https://qazleague.kz"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/cup/1/overview", nil)
	req.Header.Set("Origin", "https://qazleague.kz")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://qazleague.kz" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	t.Parallel()

	h := CORS([]string{"https://qazleague.kz"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/cup/1/overview", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("allow origin = %q, want empty", got)
	}
}

func TestCORSWildcardAndPreflight(t *testing.T) {
	t.Parallel()

	h := CORS([]string{"*"}, okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/cup/1/overview", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q, want *", got)
	}
}

func TestRequireInternalJobToken(t *testing.T) {
	t.Parallel()

	h := RequireInternalJobToken("secret", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync-live", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync-live", nil)
	req.Header.Set("X-Internal-Job-Token", "wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync-live", nil)
	req.Header.Set("X-Internal-Job-Token", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token status = %d, want 200", rec.Code)
	}
}

func TestRequireInternalJobTokenUnconfigured(t *testing.T) {
	t.Parallel()

	h := RequireInternalJobToken("", okHandler())

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync-live", nil)
	req.Header.Set("X-Internal-Job-Token", "anything")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unconfigured token status = %d, want 503", rec.Code)
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	if shouldTraceRequest("/healthz") {
		t.Fatalf("healthz should not be traced")
	}
	if !shouldTraceRequest("/v1/cup/1/overview") {
		t.Fatalf("api routes should be traced")
	}
}
