package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/app"
	"github.com/riskibarqy/fifa-tracker/internal/config"
	"github.com/riskibarqy/fifa-tracker/internal/observability"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{
		Level:          cfg.LogLevel,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.AppEnv,
	})

	logger, stopBetterStack, err := observability.InitBetterStackLogger(cfg, logger)
	if err != nil {
		return fmt.Errorf("init betterstack: %w", err)
	}
	logging.SetDefault(logger)
	defer logger.Sync()

	stopUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	pprofSrv := observability.StartPprofServer(cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var errs []error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.Error("http server failed", "error", err)
			errs = append(errs, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := application.Close(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("close app: %w", err))
	}
	if err := observability.StopPprofServer(shutdownCtx, pprofSrv, logger); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof: %w", err))
	}
	if err := stopPyroscope(); err != nil {
		errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
	}
	if err := stopUptrace(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("stop uptrace: %w", err))
	}

	logger.Info("http server stopped")
	if err := stopBetterStack(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("stop betterstack: %w", err))
	}

	return errors.Join(errs...)
}
