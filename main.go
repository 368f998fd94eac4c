package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yin-hai-bo/Six-Rush/experiments"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := experiments.LadderConfig{
		Levels:       []int{1, 2, 3, 4, 5},
		GamesPerPair: 10,
		Seed:         1,
	}

	log.Info().Ints("levels", cfg.Levels).Int("games_per_pair", cfg.GamesPerPair).Msg("running difficulty ladder")

	records, err := experiments.RunLadder(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("ladder failed")
	}

	writer, err := experiments.NewWriter("experiments/ladder")
	if err != nil {
		log.Fatal().Err(err).Msg("create writer")
	}
	if err := writer.WriteGames(records); err != nil {
		log.Fatal().Err(err).Msg("write games")
	}
	if err := writer.WriteSummaries(experiments.Summarize(records)); err != nil {
		log.Fatal().Err(err).Msg("write summaries")
	}

	log.Info().Str("dir", writer.BaseDir()).Int("games", len(records)).Msg("ladder complete")
}
