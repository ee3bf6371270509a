package httpx_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/secure"

	"github.com/ghuser/itemmock/pkg/httpx"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// TestSecurityHeaders verifies unrolled/secure sets the expected headers.
func TestSecurityHeaders(t *testing.T) {
	sm := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		IsDevelopment:         false,
	})
	h := sm.Handler(http.HandlerFunc(okHandler))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'self'",
	}
	for header, expected := range checks {
		if got := rr.Header().Get(header); got != expected {
			t.Errorf("%s: got %q, want %q", header, got, expected)
		}
	}
}

// TestRequestBodyLimit_WithinLimit verifies requests under the cap pass through.
func TestRequestBodyLimit_WithinLimit(t *testing.T) {
	const limit = 100

	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("a", 50))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(gotBody) != 50 {
		t.Fatalf("expected 50 bytes read, got %d", len(gotBody))
	}
}

// TestRequestBodyLimit_ExceedsLimit verifies that reading beyond the cap returns an error.
func TestRequestBodyLimit_ExceedsLimit(t *testing.T) {
	const limit int64 = 10

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("x", int(limit)+1))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}

func newTestRouter() *chi.Mux {
	r := httpx.NewRouter(httpx.ServerConfig{CORSAllowedOrigins: "*", IsDevelopment: true}, httpx.Middlewares{})
	r.Route("/api/1", func(r chi.Router) {
		r.Route("/item", func(r chi.Router) {
			r.Post("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
			r.Get("/{id}", okHandler)
		})
	})
	return r
}

// TestNewRouter_Routing covers the JSON 404 for unknown paths and wrong
// methods, and trailing slash stripping.
func TestNewRouter_Routing(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name     string
		method   string
		path     string
		want     int
		wantJSON bool
	}{
		{"create", http.MethodPost, "/api/1/item", http.StatusCreated, false},
		{"create with trailing slash", http.MethodPost, "/api/1/item/", http.StatusCreated, false},
		{"get", http.MethodGet, "/api/1/item/7", http.StatusOK, false},
		{"get with trailing slash", http.MethodGet, "/api/1/item/7/", http.StatusOK, false},
		{"unknown top-level path", http.MethodGet, "/nope", http.StatusNotFound, true},
		{"unknown nested path", http.MethodGet, "/api/1/nope", http.StatusNotFound, true},
		{"wrong method on known path", http.MethodDelete, "/api/1/item/7", http.StatusNotFound, true},
		{"get on create path", http.MethodGet, "/api/1/item", http.StatusNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, http.NoBody))
			if rr.Code != tt.want {
				t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, rr.Code)
			}
			if tt.wantJSON && rr.Body.String() != "{\"error\":\"not found\"}\n" {
				t.Errorf("unexpected body %q", rr.Body.String())
			}
		})
	}
}

func TestServer_Lifecycle(t *testing.T) {
	srv, err := httpx.Listen("127.0.0.1:0", http.HandlerFunc(okHandler))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv.Start()

	if strings.HasSuffix(srv.Addr(), ":0") {
		t.Fatalf("expected an assigned port, got %s", srv.Addr())
	}
	if !strings.HasPrefix(srv.BaseURL(), "http://127.0.0.1:") {
		t.Fatalf("unexpected base URL %s", srv.BaseURL())
	}

	resp, err := http.Get(srv.BaseURL() + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("second shutdown: %v", err)
	}

	if _, err := http.Get(srv.BaseURL() + "/"); err == nil {
		t.Fatal("expected connection error after shutdown")
	}
	if err, open := <-srv.Err(); open || err != nil {
		t.Fatalf("expected closed error channel, got %v", err)
	}
}

func TestServer_UnspecifiedHostBaseURL(t *testing.T) {
	srv, err := httpx.Listen(":0", http.HandlerFunc(okHandler))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer srv.Shutdown(context.Background()) //nolint:errcheck

	if !strings.HasPrefix(srv.BaseURL(), "http://127.0.0.1:") {
		t.Fatalf("unexpected base URL %s", srv.BaseURL())
	}
}

func TestServer_ShutdownWithoutStartReleasesPort(t *testing.T) {
	srv, err := httpx.Listen("127.0.0.1:0", http.HandlerFunc(okHandler))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := srv.Addr()
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	again, err := httpx.Listen(addr, http.HandlerFunc(okHandler))
	if err != nil {
		t.Fatalf("port was not released: %v", err)
	}
	_ = again.Shutdown(context.Background())
}

func TestServer_ShutdownForcesSlowRequests(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})

	srv, err := httpx.Listen("127.0.0.1:0", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
	}))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv.Start()

	go func() {
		resp, err := http.Get(srv.BaseURL() + "/")
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	if err := srv.Shutdown(ctx); err == nil {
		t.Fatal("expected a deadline error for the stuck request")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("shutdown did not respect its deadline: %s", elapsed)
	}
}
