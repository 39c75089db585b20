package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/database"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/logging"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/server"
	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/config"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.L()

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	srv, err := server.NewServer(db, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	httpServer := srv.HTTPServer()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
