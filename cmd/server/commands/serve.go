package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/kkutopiaa/tdd-restful-service/internal/platform/config"
	"github.com/kkutopiaa/tdd-restful-service/internal/platform/httpserver"
	"github.com/kkutopiaa/tdd-restful-service/internal/platform/logger"
	"github.com/kkutopiaa/tdd-restful-service/internal/platform/metrics"
	"github.com/kkutopiaa/tdd-restful-service/internal/platform/tracing"
	"github.com/kkutopiaa/tdd-restful-service/internal/users"
	"github.com/kkutopiaa/tdd-restful-service/internal/users/store"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/audit/publisher"
	auditmemory "github.com/kkutopiaa/tdd-restful-service/pkg/platform/audit/store/memory"
	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/circuit"
	"github.com/kkutopiaa/tdd-restful-service/pkg/rest"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the user resources over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFiles...)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Format)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := serve(ctx, cfg, log); err != nil {
				log.Error("server stopped", "error", err)
				return err
			}
			return nil
		},
	}
}

const auditBuffer = 256

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	userStore, closeStore, err := openStore(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	handlerOpts := []rest.Option{
		rest.WithLogger(log),
		rest.WithTracer(tracing.Tracer(cfg.Tracing.Enabled)),
	}
	routerOpts := []httpserver.Option{httpserver.WithLogger(log)}
	auditOpts := []publisher.Option{publisher.WithLogger(log), publisher.WithAsyncBuffer(auditBuffer)}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		handlerOpts = append(handlerOpts, rest.WithMetrics(metrics.New(reg)))
		routerOpts = append(routerOpts, httpserver.WithMetricsEndpoint(cfg.Metrics.Path, reg))
		auditOpts = append(auditOpts, publisher.WithMetrics(publisher.NewMetrics(reg)))
	}

	events := publisher.NewPublisher(auditmemory.NewInMemoryStore(), auditOpts...)
	defer events.Close()

	runtime, err := rest.NewRuntime(users.NewApplication(userStore, events, log))
	if err != nil {
		return fmt.Errorf("build runtime: %w", err)
	}

	router := httpserver.NewRouter(rest.NewHandler(runtime, handlerOpts...), routerOpts...)
	srv := httpserver.New(cfg.Server, router)
	return httpserver.Run(ctx, srv, cfg.Server.ShutdownTimeout, log)
}

// openStore selects PostgreSQL when a database URL is configured and the
// in-memory store otherwise.
func openStore(ctx context.Context, cfg config.Database, log *slog.Logger) (users.Store, func(), error) {
	if cfg.URL == "" {
		log.Info("using in-memory user store")
		return store.NewInMemoryStore(), func() {}, nil
	}
	db, err := store.Open(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	pg := store.NewPostgres(db)
	if err := pg.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	log.Info("using postgres user store")
	breaker := circuit.New("users-postgres")
	return store.NewGuarded(pg, breaker, log), func() { _ = db.Close() }, nil
}
