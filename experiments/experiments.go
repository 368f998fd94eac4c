// Package experiments runs self-play matches between difficulty tiers and
// records their outcomes for offline analysis.
package experiments

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/yin-hai-bo/Six-Rush/engine"
	"github.com/yin-hai-bo/Six-Rush/game"
	"github.com/yin-hai-bo/Six-Rush/searcher"
)

// LadderConfig describes one ladder run: every pairing of Levels plays
// GamesPerPair games, alternating which side leads.
type LadderConfig struct {
	Levels       []int
	GamesPerPair int
	MaxTurns     int
	Seed         uint64
}

// GameRecord is one finished (or exhausted) game.
type GameRecord struct {
	ID          int
	PlayerLevel int
	AILevel     int
	PlayerFirst bool
	Result      game.GameResult
	Finished    bool
	HalfMoves   int
	Duration    time.Duration
}

// RunLadder plays every pairing and returns the per-game records. Both seats
// are searcher agents; the "player" seat exercises the selection event path
// and the "AI" seat the AIMoveSelected path.
func RunLadder(cfg LadderConfig) ([]GameRecord, error) {
	if len(cfg.Levels) == 0 || cfg.GamesPerPair <= 0 {
		return nil, errors.New("ladder needs levels and a game count")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var records []GameRecord
	id := 1

	for _, playerLevel := range cfg.Levels {
		for _, aiLevel := range cfg.Levels {
			for i := 0; i < cfg.GamesPerPair; i++ {
				playerFirst := i%2 == 0
				record, err := playGame(id, playerLevel, aiLevel, playerFirst, cfg, rng)
				if err != nil {
					return nil, err
				}
				records = append(records, record)
				id++
			}
		}
	}
	return records, nil
}

func playGame(id, playerLevel, aiLevel int, playerFirst bool, cfg LadderConfig, rng *rand.Rand) (GameRecord, error) {
	playerAgent := searcher.New(playerLevel, searcher.WithRand(rand.New(rand.NewSource(rng.Uint64()))))
	aiAgent := searcher.New(aiLevel, searcher.WithRand(rand.New(rand.NewSource(rng.Uint64()))), searcher.WithMetrics())

	var options []engine.Option
	if cfg.MaxTurns > 0 {
		options = append(options, engine.WithMaxTurns(cfg.MaxTurns))
	}
	e, err := engine.Local(playerAgent, aiAgent, playerFirst, aiLevel, options...)
	if err != nil {
		return GameRecord{}, errors.Wrapf(err, "game %d", id)
	}

	start := time.Now()
	result, finished, halfMoves, err := e.Run()
	if err != nil {
		return GameRecord{}, errors.Wrapf(err, "game %d", id)
	}

	log.Info().
		Int("game", id).
		Int("player_level", playerLevel).
		Int("ai_level", aiLevel).
		Bool("finished", finished).
		Msg("ladder game done")

	return GameRecord{
		ID:          id,
		PlayerLevel: playerLevel,
		AILevel:     aiLevel,
		PlayerFirst: playerFirst,
		Result:      result,
		Finished:    finished,
		HalfMoves:   halfMoves,
		Duration:    time.Since(start),
	}, nil
}
