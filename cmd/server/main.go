// Command server exposes the OSHB morphology decoder and the Hebrew
// transliterator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/decode?code=<morph>
//	POST /api/decode          body: {"codes":["HVqp3ms", ...]}
//	GET  /api/transliterate?text=<hebrew>
//	POST /api/slugs           body: {"words":[{"position":1,"surface":"..."}]}
//	GET  /healthz
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hebrew-lexicon/oshb/internal/batch"
	"github.com/hebrew-lexicon/oshb/internal/config"
	"github.com/hebrew-lexicon/oshb/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(log)

	runner := batch.New(cfg.Batch, log)
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(runner, cfg.CORS, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
