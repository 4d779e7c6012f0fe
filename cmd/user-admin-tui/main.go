package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/config"
	"github.com/vasiliy-maslov/user-admin/internal/tui"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "user-admin-tui").Logger()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.App.LogLevel)

	// Ctrl-C is read by the prompt itself while the terminal is in raw mode.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	client := user.NewClient(cfg.UsersAPI.URL, cfg.UsersAPI.Timeout)
	app := tui.NewApp(client, tui.NewSurveyPrompter())

	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Console failed")
	}
}
