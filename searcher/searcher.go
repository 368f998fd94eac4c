// Package searcher selects moves for the computer player. Difficulty tiers
// 1 and 2 are randomized (uniform, then capture-greedy); tiers 3 to 5 run
// depth-limited minimax with alpha-beta pruning at increasing depths.
package searcher

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/yin-hai-bo/Six-Rush/game"
)

// Search depths per minimax tier.
const (
	MinLevel = 1
	MaxLevel = 5

	depthLevel3 = 4
	depthLevel4 = 6
	depthLevel5 = 8
)

type Option func(s *Searcher)

// WithRand injects the random source used by the randomized tiers, so tests
// and experiments can pin a seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithMetrics enables per-search metrics collection.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

// Searcher picks moves at a fixed difficulty level. It is a pure function of
// (board, side) apart from the injected random source.
type Searcher struct {
	level   int
	rng     *rand.Rand
	metrics Collector
}

// New returns a searcher for the given difficulty, clamped to 1..5.
func New(level int, options ...Option) *Searcher {
	s := &Searcher{
		level:   clampLevel(level),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Level returns the clamped difficulty level.
func (s *Searcher) Level() int { return s.level }

// LastSearch returns the metrics of the most recent SelectMove call. Zero
// unless WithMetrics was set.
func (s *Searcher) LastSearch() SearchMetric { return s.metrics.Last() }

// SelectMove chooses one legal move for side. It fails only when side has no
// legal moves, which the rules treat as a stalemate loss upstream.
func (s *Searcher) SelectMove(board *game.Board, side game.Side) (game.Move, error) {
	moves := game.GetValidMoves(board, side)
	if len(moves) == 0 {
		return game.Move{}, errors.Errorf("no legal move for %s", side)
	}

	s.metrics.Start(s.level, searchDepth(s.level))
	defer s.metrics.Complete()

	switch s.level {
	case 1:
		return s.randomMove(moves), nil
	case 2:
		return s.captureGreedyMove(board, moves, side), nil
	case 3:
		return s.minimaxMove(board, moves, side, depthLevel3)
	case 4:
		return s.minimaxMove(board, moves, side, depthLevel4)
	case 5:
		return s.minimaxMove(board, moves, side, depthLevel5)
	}
	return s.randomMove(moves), nil
}

// FindMove lets a Searcher serve as an engine agent.
func (s *Searcher) FindMove(board *game.Board, side game.Side) (game.Move, error) {
	return s.SelectMove(board, side)
}

// randomMove picks uniformly among the legal moves.
func (s *Searcher) randomMove(moves []game.Move) game.Move {
	return moves[s.rng.Intn(len(moves))]
}

// captureGreedyMove picks uniformly among the moves that capture at least
// one piece, simulating each candidate on a scratch board. Falls back to a
// uniform pick when nothing captures.
func (s *Searcher) captureGreedyMove(board *game.Board, moves []game.Move, side game.Side) game.Move {
	var capturing []game.Move
	for _, move := range moves {
		scratch := board.Copy()
		record, err := scratch.ExecuteMove(move.From, move.To, side)
		if err == nil && len(record.Captured) > 0 {
			capturing = append(capturing, move)
		}
	}
	if len(capturing) > 0 {
		return s.randomMove(capturing)
	}
	return s.randomMove(moves)
}

func searchDepth(level int) int {
	switch level {
	case 3:
		return depthLevel3
	case 4:
		return depthLevel4
	case 5:
		return depthLevel5
	}
	return 0
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
