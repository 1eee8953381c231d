package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/billsplit/internal/auth"
	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/config"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/middleware"
	"github.com/mmynk/billsplit/internal/service"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/internal/storage/sqlite"
	"github.com/mmynk/billsplit/pkg/api"
	"github.com/mmynk/billsplit/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.SetupWithLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	formService := service.NewFormService(
		storage.NewForms(store),
		calculator.New(cfg.Tolerance),
		cfg.Currency,
		metrics.New(prometheus.DefaultRegisterer),
	)
	authService := service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, slog.Default())

	formAuth := middleware.OptionalAuth(jwtManager)
	if cfg.RequireLogin {
		formAuth = middleware.RequireAuth(jwtManager)
	}

	mux := http.NewServeMux()
	mux.Handle(api.NewFormServiceHandler(formService,
		connect.WithInterceptors(formAuth, middleware.LoggingInterceptor()),
	))
	mux.Handle(api.NewAuthServiceHandler(authService,
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager), middleware.LoggingInterceptor()),
	))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// h2c serves HTTP/2 without TLS for Connect and gRPC clients
	handler := h2c.NewHandler(middleware.HTTPLogging(middleware.CORS(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting",
			"address", addr,
			"url", fmt.Sprintf("http://localhost%s", addr),
			"require_login", cfg.RequireLogin,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		store.Close()
		os.Exit(1)
	}
}
