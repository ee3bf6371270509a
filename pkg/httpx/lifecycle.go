package httpx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
)

// Server owns a bound listener and the *http.Server serving it.
// Binding happens in Listen, so Addr is known (even for port 0) before Start.
type Server struct {
	srv       *http.Server
	ln        net.Listener
	errCh     chan error
	startOnce sync.Once
	stopOnce  sync.Once
	stopErr   error
}

// Listen binds addr and prepares handler to be served on it.
func Listen(addr string, handler http.Handler) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("httpx: listen on %s: %w", addr, err)
	}
	return &Server{
		srv:   NewServer(addr, handler),
		ln:    ln,
		errCh: make(chan error, 1),
	}, nil
}

// Start serves in a background goroutine. net/http handles every accepted
// connection on its own goroutine. Calling Start more than once has no effect.
func (s *Server) Start() {
	s.startOnce.Do(func() {
		go func() {
			if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.errCh <- err
			}
			close(s.errCh)
		}()
	})
}

// Err delivers an unexpected serve error, if any. It is closed once serving ends.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Addr returns the host:port actually bound.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// BaseURL returns http://host:port for the bound address. Unspecified hosts
// (0.0.0.0, ::) are reported as 127.0.0.1 so the URL is dialable.
func (s *Server) BaseURL() string {
	host, port, err := net.SplitHostPort(s.Addr())
	if err != nil {
		return "http://" + s.Addr()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires, then force-closes whatever is left. The listener is
// always released. Subsequent calls return the first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.stopErr = fmt.Errorf("httpx: graceful shutdown: %w", err)
			_ = s.srv.Close()
		}
		// Serve closes the listener itself; this covers a server that never started.
		if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) && s.stopErr == nil {
			s.stopErr = fmt.Errorf("httpx: close listener: %w", err)
		}
		// Unblock Err readers when Start was never called.
		s.startOnce.Do(func() { close(s.errCh) })
	})
	return s.stopErr
}
