package main

//
//  @title           mse-api
//  @version         1.0
//  @description     REST facade over Macedonian Stock Exchange companies and price history, with prediction, indicator, and news-sentiment proxies.
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        companies
//  @tag.description Company master data, price history, and upstream proxies
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/traderflow/mse-api/config"
	_ "github.com/traderflow/mse-api/docs" // swagger docs
	"github.com/traderflow/mse-api/internal/app"
	"github.com/traderflow/mse-api/internal/ingestion"
	"github.com/traderflow/mse-api/internal/logger"
	"github.com/traderflow/mse-api/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and cleans up resources when an
// OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the mse-api application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API exposing companies, price history, and the
//     prediction/indicator/news proxies.
//   - ingest: Loads MSE symbol-history CSV exports from a directory into
//     Postgres (creates the schema if needed).
//
// Flags:
//   - --mode:     Execution mode ("api" or "ingest"). Default: "api".
//   - --dir:      Directory with issuer .csv files for ingest mode.
//   - --parallel: How many files to process concurrently (0=auto).
//   - --force:    Reingest issuers even if already loaded.
//   - --port:     Port for the API server. Defaults to SERVER_PORT from config.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or ingest")
	dir := flag.String("dir", "./data/input", "Directory with issuer .csv files")
	parallel := flag.Int("parallel", 0, "How many files to process concurrently (0=auto)")
	force := flag.Bool("force", false, "Reingest issuers even if already loaded (deletes existing price points)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		logger.L().Info().Msg("running ingestion")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := storage.EnsureSchema(db); err != nil {
			logger.L().Fatal().Err(err).Msg("schema setup failed")
		}

		if err := ingestion.ProcessDirectory(ctx, *dir, db, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
