package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load candidate list")
	}
	set, err := solver.NewCandidateSet(words.Candidates())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid candidate list")
	}
	log.Info().Int("candidates", set.Len()).Int("length", set.WordLength()).Msg("candidate set ready")

	db, err := openDB(getEnv("DB_PATH", "./data/solver.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	mem := store.NewMemoryStore()
	srv, err := httpserver.New(mem, db, set, words.Fingerprint())
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Msg("starting solver server")
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
