package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ItzRainUwU/RimuWordle/internal/httpserver"
	"github.com/ItzRainUwU/RimuWordle/internal/leaderboard"
	"github.com/ItzRainUwU/RimuWordle/internal/store"
	"github.com/ItzRainUwU/RimuWordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	gw := store.NewSQLite(db)

	// Completed wins normally land in the local score store; point
	// LEADERBOARD_URL at a remote service to ship them there instead.
	var notify httpserver.ScoreNotifier
	if base := os.Getenv("LEADERBOARD_URL"); base != "" {
		lb := leaderboard.NewClient(base)
		notify = lb.SubmitAsync
	}

	srv := httpserver.New(db, gw, notify)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting rimuwordle server")
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
