package experiments

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/yin-hai-bo/Six-Rush/game"
)

// PairSummary aggregates the games of one (player level, AI level) pairing.
type PairSummary struct {
	PlayerLevel     int
	AILevel         int
	Games           int
	AIWinRate       float64
	DrawRate        float64
	MeanHalfMoves   float64
	StddevHalfMoves float64
	MeanDurationMs  float64
}

// Summarize groups records by level pairing and computes win rates and
// game-length statistics.
func Summarize(records []GameRecord) []PairSummary {
	type key struct{ player, ai int }
	groups := make(map[key][]GameRecord)
	for _, r := range records {
		k := key{player: r.PlayerLevel, ai: r.AILevel}
		groups[k] = append(groups[k], r)
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].player != keys[j].player {
			return keys[i].player < keys[j].player
		}
		return keys[i].ai < keys[j].ai
	})

	summaries := make([]PairSummary, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		halfMoves := make([]float64, len(group))
		durations := make([]float64, len(group))
		aiWins, draws := 0, 0
		for i, r := range group {
			halfMoves[i] = float64(r.HalfMoves)
			durations[i] = float64(r.Duration.Milliseconds())
			if r.Finished && r.Result == game.AIWin {
				aiWins++
			}
			if r.Finished && r.Result == game.Draw {
				draws++
			}
		}

		mean, stddev := stat.MeanStdDev(halfMoves, nil)
		summaries = append(summaries, PairSummary{
			PlayerLevel:     k.player,
			AILevel:         k.ai,
			Games:           len(group),
			AIWinRate:       float64(aiWins) / float64(len(group)),
			DrawRate:        float64(draws) / float64(len(group)),
			MeanHalfMoves:   mean,
			StddevHalfMoves: stddev,
			MeanDurationMs:  stat.Mean(durations, nil),
		})
	}
	return summaries
}
