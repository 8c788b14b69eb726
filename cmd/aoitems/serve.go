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

	"github.com/spf13/cobra"

	"aoitems/internal/service/equipment"
	"aoitems/internal/service/interpolation"
	"aoitems/internal/service/report"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, storage, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer storage.Close()

	engine := interpolation.NewEngine(storage, log)
	slots := equipment.NewService(storage, engine, cfg.SlotLookupWorkers, log)
	reports := report.NewReportService(engine)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, engine, slots, reports),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: 2*cfg.RequestTimeout + cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			return err
		}
	case sig := <-shutdown:
		log.Info("received shutdown signal", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("error during shutdown", slog.String("error", err.Error()))
			return err
		}
	}

	log.Info("server stopped")

	return nil
}
