package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemmock/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, resp
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("down")

	tests := []struct {
		name       string
		store      error
		eventBus   error
		wantStatus int
		want       map[string]string
	}{
		{"all healthy", nil, nil, http.StatusOK,
			map[string]string{"status": "ok", "store": "ok", "event_bus": "ok"}},
		{"store down", down, nil, http.StatusServiceUnavailable,
			map[string]string{"status": "degraded", "store": "unreachable", "event_bus": "ok"}},
		{"event bus down", nil, down, http.StatusServiceUnavailable,
			map[string]string{"status": "degraded", "store": "ok", "event_bus": "unreachable"}},
		{"all down", down, down, http.StatusServiceUnavailable,
			map[string]string{"status": "degraded", "store": "unreachable", "event_bus": "unreachable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, resp := serveHealth(t, httpx.HealthChecks{
				"store":     &stubChecker{err: tt.store},
				"event_bus": &stubChecker{err: tt.eventBus},
			})
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			for k, v := range tt.want {
				if resp[k] != v {
					t.Errorf("%s: got %q, want %q", k, resp[k], v)
				}
			}
		})
	}
}

func TestHealthHandler_NoChecks(t *testing.T) {
	rr, resp := serveHealth(t, nil)
	if rr.Code != http.StatusOK || resp["status"] != "ok" {
		t.Fatalf("expected ok with no checks, got %d %v", rr.Code, resp)
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr, _ := serveHealth(t, httpx.HealthChecks{"store": &stubChecker{}})

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
