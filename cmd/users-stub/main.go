package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/config"
	"github.com/vasiliy-maslov/user-admin/internal/transport"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "users-stub").Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.App.LogLevel)

	log.Info().Msg("Users stub starting...")

	var seed []user.User
	if cfg.Stub.SeedFile != "" {
		seed, err = user.LoadSeed(cfg.Stub.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("seed_file", cfg.Stub.SeedFile).Msg("Failed to load seed users")
		}
	}

	repo, err := user.NewMemoryRepository(seed)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed repository")
	}
	log.Info().Int("users", len(seed)).Msg("Repository ready")

	server := &http.Server{
		Addr:         ":" + cfg.Stub.Port,
		Handler:      transport.NewAPIRouter(repo),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Stub.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
