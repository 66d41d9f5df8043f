package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"contactbook/internal/logging"
	"contactbook/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		// Logger not configured yet.
		logging.New(logging.Config{Output: os.Stderr}).Fatal(err, "load config")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logging.SetGlobalLogger(logger)

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err, "connect database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := dataStore.EnsureSchema(ctx); err != nil {
		logger.Fatal(err, "ensure schema")
	}

	version, err := dataStore.Version(ctx)
	if err != nil {
		logger.Fatal(err, "query database version")
	}
	log.Info().Str("version", version).Msg("database connected")

	handler := newHTTPHandler(cfg, dataStore)

	log.Info().Str("addr", cfg.Addr).Msg("server listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
