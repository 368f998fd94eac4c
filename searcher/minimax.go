package searcher

import (
	"math"

	"github.com/pkg/errors"

	"github.com/yin-hai-bo/Six-Rush/game"
)

// Large-but-finite sentinels keep scores orderable and safe to combine with
// evaluation terms; true infinities would overflow on adjustment.
const (
	scoreInf = math.MaxInt32
	// stalemateSentinel is returned when the side to move at a ply has no
	// legal moves, encoding the stalemate loss without a separate terminal
	// check.
	stalemateSentinel = scoreInf - 100
)

// minimaxMove runs the root of the search: every candidate is applied to a
// scratch board and scored by minimax from the opponent's reply onward. The
// maximizing player is always the searcher's own side.
func (s *Searcher) minimaxMove(board *game.Board, moves []game.Move, side game.Side, depth int) (game.Move, error) {
	best := game.Move{}
	bestScore := -scoreInf
	found := false

	for _, move := range moves {
		scratch := board.Copy()
		if _, err := scratch.ExecuteMove(move.From, move.To, side); err != nil {
			continue
		}
		score := s.minimax(scratch, depth-1, false, side, -scoreInf, scoreInf)
		if !found || score > bestScore {
			bestScore = score
			best = move
			found = true
		}
	}

	if !found {
		return game.Move{}, errors.New("no candidate move survived the search")
	}
	return best, nil
}

// minimax searches to the given depth with alpha-beta pruning. At depth 0 it
// returns the static evaluation; a ply with no legal moves scores as a
// near-terminal win or loss for the searcher depending on whose turn it is.
func (s *Searcher) minimax(board *game.Board, depth int, maximizing bool, aiSide game.Side, alpha, beta int) int {
	s.metrics.AddNode()

	if depth == 0 {
		s.metrics.AddLeaf()
		return Evaluate(board, aiSide)
	}

	currentSide := aiSide
	if !maximizing {
		currentSide = aiSide.Opposite()
	}
	moves := game.GetValidMoves(board, currentSide)
	if len(moves) == 0 {
		if maximizing {
			return -stalemateSentinel
		}
		return stalemateSentinel
	}

	if maximizing {
		maxEval := -scoreInf
		for _, move := range moves {
			scratch := board.Copy()
			if _, err := scratch.ExecuteMove(move.From, move.To, currentSide); err != nil {
				continue
			}
			eval := s.minimax(scratch, depth-1, false, aiSide, alpha, beta)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return maxEval
	}

	minEval := scoreInf
	for _, move := range moves {
		scratch := board.Copy()
		if _, err := scratch.ExecuteMove(move.From, move.To, currentSide); err != nil {
			continue
		}
		eval := s.minimax(scratch, depth-1, true, aiSide, alpha, beta)
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return minEval
}
