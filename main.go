package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RGonza1529/evil-hangman/internal/game"
	"github.com/RGonza1529/evil-hangman/internal/httpserver"
	"github.com/RGonza1529/evil-hangman/internal/store"
	"github.com/RGonza1529/evil-hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	index, err := game.NewIndex(words.All())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to index dictionary")
	}
	wordCount, lengthCount := words.Stats()
	log.Info().Int("words", wordCount).Int("lengths", lengthCount).Msg("dictionary loaded")

	db, err := openDB(getEnv("DB_PATH", "./data/hangman.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, index)
	port := getEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("starting evil-hangman server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
