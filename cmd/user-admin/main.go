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
	"github.com/vasiliy-maslov/user-admin/internal/web"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "user-admin").Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.App.LogLevel)

	log.Info().Msg("User admin console starting...")
	log.Debug().Interface("config_loaded", cfg).Msg("Configuration loaded")

	client := user.NewClient(cfg.UsersAPI.URL, cfg.UsersAPI.Timeout)
	sessions := web.NewSessionStore(client, cfg.Session.TTL)

	views, err := web.NewViews()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load templates")
	}

	handler := web.NewHandler(sessions, views, web.WithCookieName(cfg.Session.CookieName))
	router := transport.NewUIRouter(handler)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.UsersAPI.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Str("users_api", cfg.UsersAPI.URL).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Int("sessions", sessions.Len()).Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("User admin console stopped gracefully.")
}
