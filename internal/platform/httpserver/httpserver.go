package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/kkutopiaa/tdd-restful-service/internal/platform/config"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/httputil"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/middleware/metadata"
	request "github.com/kkutopiaa/tdd-restful-service/pkg/platform/middleware/request"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/middleware/requesttime"
)

type routerOptions struct {
	logger      *slog.Logger
	gatherer    prometheus.Gatherer
	metricsPath string
}

// Option configures NewRouter.
type Option func(*routerOptions)

// WithLogger sets the access logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *routerOptions) { o.logger = logger }
}

// WithMetricsEndpoint serves g on path.
func WithMetricsEndpoint(path string, g prometheus.Gatherer) Option {
	return func(o *routerOptions) {
		o.metricsPath = path
		o.gatherer = g
	}
}

// NewRouter mounts the resource handler at the root, next to the health and
// metrics endpoints, behind the common middleware chain.
func NewRouter(resources http.Handler, opts ...Option) chi.Router {
	o := &routerOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(request.Logger(o.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if o.gatherer != nil {
		r.Method(http.MethodGet, o.metricsPath, promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{}))
	}
	r.Mount("/", resources)
	return r
}

// New builds an HTTP server with the configured timeouts.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// Run serves srv until ctx is cancelled, then shuts it down gracefully within
// shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
