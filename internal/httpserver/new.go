package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/booking"
	"shareit/internal/storage"
	"shareit/internal/storage/memory"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	rateLimitPerMin int

	// Storage
	backend    string
	postgresDB *pgxpool.Pool
	memoryDB   *memory.DB

	// Integrations
	reporter response.Reporter
	calendar booking.CalendarPublisher
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	RateLimitPerMin int

	// StorageBackend is storage.BackendPostgres (PostgresDB required) or
	// storage.BackendMemory (MemoryDB optional).
	StorageBackend string
	PostgresDB     *pgxpool.Pool
	MemoryDB       *memory.DB

	// Reporter receives unexpected errors. Optional.
	Reporter response.Reporter
	// Calendar mirrors approved bookings. Optional.
	Calendar booking.CalendarPublisher
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		rateLimitPerMin: cfg.RateLimitPerMin,
		backend:         cfg.StorageBackend,
		postgresDB:      cfg.PostgresDB,
		memoryDB:        cfg.MemoryDB,
		reporter:        cfg.Reporter,
		calendar:        cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.backend == storage.BackendMemory && srv.memoryDB == nil {
		srv.memoryDB = memory.New()
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	switch srv.backend {
	case storage.BackendPostgres:
		if srv.postgresDB == nil {
			return errors.New("postgres pool is required for the postgres backend")
		}
	case storage.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", srv.backend)
	}
	return nil
}

// Handler exposes the routed engine.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
