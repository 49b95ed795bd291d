package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/uktrade/dit-thumber/cliparse"
	"github.com/uktrade/dit-thumber/db"
	"github.com/uktrade/dit-thumber/logging"
	"github.com/uktrade/dit-thumber/middleware"
	"github.com/uktrade/dit-thumber/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error parsing flags")
		os.Exit(1)
	}

	logging.Init("dit-thumber", cfg.Env, cfg.LogLevel)

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Str("database_type", cfg.DatabaseType).Msg("database connection failed")
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		log.Error().Err(err).Msg("schema creation failed")
		os.Exit(1)
	}
	log.Info().Msg("database schema ready")

	// Create router
	routes, err := router.NewRouter(dbConn, cfg)
	if err != nil {
		log.Error().Err(err).Msg("router setup failed")
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(routes),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server
	log.Info().Int("port", cfg.Port).Msg("listening")
	if err := serve(&server, server.ListenAndServe, stop); err != nil {
		log.Error().Err(err).Msg("server failed")
		return
	}
	log.Info().Msg("server closed")
}

// serve runs listen until a signal arrives on stop, then returns once
// in-flight requests have drained or shutdownTimeout has passed.
func serve(server *http.Server, listen func() error, stop <-chan os.Signal) error {
	done := make(chan struct{})
	go func() {
		defer close(done)

		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			server.Close()
		}
	}()

	if err := listen(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// ListenAndServe returns as soon as Shutdown starts
	<-done
	return nil
}
