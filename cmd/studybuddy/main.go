package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/studybuddy-dev/studybuddy/internal/auth"
	"github.com/studybuddy-dev/studybuddy/internal/config"
	"github.com/studybuddy-dev/studybuddy/internal/router"
	"github.com/studybuddy-dev/studybuddy/internal/store"
)

func main() {
	// A missing .env file is fine outside development.
	_ = godotenv.Load()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)

	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	db, err := store.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := store.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	st := store.NewGormStore(db)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	r := router.New(cfg, st, tokens)

	log.Info().Str("port", cfg.Port).Msg("StudyBuddy API starting")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
