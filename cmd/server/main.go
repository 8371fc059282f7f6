package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"societyledger/internal/api"
	"societyledger/internal/config"
	"societyledger/internal/document"
	"societyledger/internal/service"
	"societyledger/internal/storage/sqlite"
	"societyledger/pkg/logging"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	svc := service.New(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bulk-load all three collections before serving; the presentation layer
	// depends on a consistent initial state.
	if err := svc.Initialize(ctx); err != nil {
		slog.Error("Failed to load collections", "error", err)
		os.Exit(1)
	}

	society := document.Society{
		Name:           cfg.SocietyName,
		RegistrationNo: cfg.SocietyRegNo,
		Address:        cfg.SocietyAddress,
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.NewRouter(svc, society, cfg.NoticeDues),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "address", cfg.Address())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
