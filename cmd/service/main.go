package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "curior/internal/app"
	"curior/internal/handlers/rest/healthcheck_head"
	"curior/internal/handlers/rest/order_get"
	"curior/internal/handlers/rest/order_post"
	"curior/internal/handlers/rest/order_status_put"
	"curior/internal/handlers/rest/orders_get"
	"curior/internal/handlers/rest/parcel_assign_put"
	"curior/internal/handlers/rest/parcel_get"
	"curior/internal/handlers/rest/parcel_post"
	"curior/internal/handlers/rest/parcel_put"
	"curior/internal/handlers/rest/parcel_status_put"
	"curior/internal/handlers/rest/parcel_track_get"
	"curior/internal/handlers/rest/parcels_assigned_get"
	"curior/internal/handlers/rest/parcels_get"
	"curior/internal/handlers/rest/ping_get"
	"curior/internal/handlers/rest/status_report_get"
	"curior/internal/handlers/rest/users_get"
	"curior/internal/pkg/config"
	"curior/internal/pkg/dotenv"
	metrics_system "curior/internal/pkg/metrics"
	"curior/internal/pkg/middlewares/graceful_shutdown"
	"curior/internal/pkg/middlewares/metrics"
	"curior/internal/pkg/middlewares/rate_limiter"
	"curior/internal/pkg/middlewares/session"
	"curior/internal/pkg/middlewares/timeout"
	"curior/internal/pkg/postgres"
	"curior/pkg/logger"
	"curior/pkg/logger/zap_adapter"
	"curior/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting parcel-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // inheriting from context.Background() here is part of the graceful shutdown flow
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx feeds BaseContext and must survive SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent from ctx, which is already cancelled at this point.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// Everything below requires a bearer token.
	api := router.PathPrefix("/").Subrouter()
	api.Use(session.Middleware(log, cfg.Session.JWTSecret))

	api.Handle("/parcel/{id}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	api.Handle("/parcel/track/{tracking_id}", parcel_track_get.New(log, app.ServiceParcel)).Methods("GET")
	api.Handle("/parcels", parcels_get.New(log, app.ServiceParcel)).Methods("GET")
	api.Handle("/parcels/assigned", parcels_assigned_get.New(log, app.ServiceParcel)).Methods("GET")
	api.Handle("/parcel", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	api.Handle("/parcel/{id}", parcel_put.New(log, app.ServiceParcel)).Methods("PUT")
	api.Handle("/parcel/{id}/status", parcel_status_put.New(log, app.ServiceParcel)).Methods("PUT")
	api.Handle("/parcel/{id}/assign", parcel_assign_put.New(log, app.ServiceParcel)).Methods("PUT")

	api.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/order/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/order", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/order/{id}/status", order_status_put.New(log, app.ServiceOrder)).Methods("PUT")

	api.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")
	api.Handle("/reports/status", status_report_get.New(log, app.ServiceParcel)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
