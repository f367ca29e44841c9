package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"serviceBooker/internal/booking"
	"serviceBooker/internal/config"
	httpserver "serviceBooker/internal/http-server"
	"serviceBooker/internal/lib/logger"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/lib/metrics"
	"serviceBooker/internal/storage"
	"serviceBooker/internal/storage/file"
	"serviceBooker/internal/storage/postgres"
	"syscall"
	"time"
)

type bookingStore interface {
	booking.Store
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env, os.Stdout)

	log.Info("Starting booking service", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	log.Info("storage ready", slog.String("driver", cfg.Storage.Driver))

	metrics.Register()

	ledger := booking.NewLedger(log, store)
	router := httpserver.NewRouter(log, ledger, cfg.CORS)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (bookingStore, error) {
	switch cfg.Storage.Driver {
	case "file":
		return file.New(cfg.Storage.Path), nil
	case "postgres":
		return postgres.InitDB(&cfg.Database)
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, cfg.Storage.Driver)
	}
}
