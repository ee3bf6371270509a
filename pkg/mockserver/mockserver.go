// Package mockserver runs the complete item service in-process on a real
// TCP port, for client tests and local tooling.
//
// Each Server owns its own store, event bus and listener; several can run in
// one process without sharing state.
package mockserver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ghuser/itemmock/pkg/app"
	"github.com/ghuser/itemmock/pkg/config"
	"github.com/ghuser/itemmock/pkg/events"
	"github.com/ghuser/itemmock/pkg/httpx"
	"github.com/ghuser/itemmock/pkg/logger"
	"github.com/ghuser/itemmock/services/item/application/api"
	"github.com/ghuser/itemmock/services/item/application/listeners"
	"github.com/ghuser/itemmock/services/item/infrastructure/persistence/memory"
)

const (
	defaultAddr            = "127.0.0.1:0"
	defaultShutdownTimeout = 2 * time.Second
)

// Options configures Start. The zero value is valid.
type Options struct {
	// Addr is the TCP address to bind. Defaults to 127.0.0.1:0 (any free port).
	Addr string
	// Logger receives request and event logs. Defaults to logger.Discard().
	Logger logger.Logger
	// ShutdownTimeout bounds Close when its context has no deadline. Defaults to 2s.
	ShutdownTimeout time.Duration
	// Clock stamps createdAt. Defaults to time.Now.
	Clock func() time.Time
}

// Server is a running mock item service.
type Server struct {
	http     *httpx.Server
	bus      *events.EventBus
	activity *listeners.ActivityLog
	cancel   context.CancelFunc
	timeout  time.Duration
	log      logger.Logger
}

// Start builds the service and begins serving. The event subscription lives
// until ctx is done or Close is called.
func Start(ctx context.Context, opts Options) (*Server, error) {
	if opts.Addr == "" {
		opts.Addr = defaultAddr
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}

	log := opts.Logger
	var repoOpts []memory.Option
	if opts.Clock != nil {
		repoOpts = append(repoOpts, memory.WithClock(opts.Clock))
	}
	bus := events.NewEventBus(&config.Config{}, log)

	subCtx, cancel := context.WithCancel(ctx)
	activity := listeners.NewActivityLog(log)
	if err := activity.Register(subCtx, bus); err != nil {
		cancel()
		_ = bus.Close()
		return nil, fmt.Errorf("mockserver: %w", err)
	}

	a := &app.Application{
		Logger:   log,
		Items:    memory.NewItemRepository(repoOpts...),
		EventBus: bus,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{ServiceName: "itemmock", IsDevelopment: true, CORSAllowedOrigins: "*"},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Logger:   logger.Middleware(log),
		},
	)
	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		"store":     a.Items,
		"event_bus": bus,
	}))
	api.Mount(r, a)

	srv, err := httpx.Listen(opts.Addr, r)
	if err != nil {
		cancel()
		_ = bus.Close()
		return nil, fmt.Errorf("mockserver: %w", err)
	}
	srv.Start()
	log.Info("mock item service listening", "addr", srv.Addr())

	return &Server{
		http:     srv,
		bus:      bus,
		activity: activity,
		cancel:   cancel,
		timeout:  opts.ShutdownTimeout,
		log:      log,
	}, nil
}

// NewTest starts a Server on a free loopback port and closes it when t ends.
func NewTest(t testing.TB) *Server {
	t.Helper()
	s, err := Start(context.Background(), Options{})
	if err != nil {
		t.Fatalf("mockserver: start: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(context.Background()); err != nil {
			t.Errorf("mockserver: close: %v", err)
		}
	})
	return s
}

// BaseURL returns http://host:port of the running service.
func (s *Server) BaseURL() string { return s.http.BaseURL() }

// Addr returns the bound host:port.
func (s *Server) Addr() string { return s.http.Addr() }

// Err delivers an unexpected serve error.
func (s *Server) Err() <-chan error { return s.http.Err() }

// SellerActivity reports how many item.created events were observed for the seller.
// Event delivery is asynchronous, so the count may briefly lag a 201 response.
func (s *Server) SellerActivity(sellerID int64) int {
	return s.activity.SellerActivity(sellerID)
}

// Close stops the HTTP server, waiting for in-flight requests until ctx
// expires (or ShutdownTimeout when ctx has no deadline), then stops the
// event bus. It is safe to call more than once.
func (s *Server) Close(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err := s.http.Shutdown(ctx)
	s.cancel()
	if busErr := s.bus.Close(); busErr != nil && err == nil {
		err = busErr
	}
	if err != nil {
		return fmt.Errorf("mockserver: close: %w", err)
	}
	s.log.Info("mock item service stopped")
	return nil
}
