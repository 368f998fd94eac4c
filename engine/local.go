// Package engine hosts a game.Game without a GUI. It plays the role the
// windowing host plays in production: it submits input events, synthesizes
// the animation-completion and check-completion events, and asks an agent
// for a move whenever the machine enters the AI-thinking phase.
package engine

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/yin-hai-bo/Six-Rush/game"
)

// Agent chooses a move for a side. searcher.Searcher implements it.
type Agent interface {
	FindMove(board *game.Board, side game.Side) (game.Move, error)
}

// DefaultMaxTurns bounds runaway games between weak agents.
const DefaultMaxTurns = 500

type Option func(e *Engine)

// WithMaxTurns overrides the half-move budget.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine drives one game to completion. The player agent occupies the human
// seat and moves through the selection events; the AI agent moves through
// AIMoveSelected, exactly as a GUI host would feed the machine.
type Engine struct {
	Game        *game.Game
	PlayerAgent Agent
	AIAgent     Agent
	maxTurns    int
}

// Local returns an engine with a freshly started game.
func Local(playerAgent, aiAgent Agent, playerFirst bool, aiLevel int, options ...Option) (*Engine, error) {
	if playerAgent == nil || aiAgent == nil {
		return nil, errors.New("both seats need an agent")
	}

	e := &Engine{
		Game:        game.New(),
		PlayerAgent: playerAgent,
		AIAgent:     aiAgent,
		maxTurns:    DefaultMaxTurns,
	}
	for _, option := range options {
		option(e)
	}

	err := e.Game.HandleEvent(game.StartNewGame{PlayerFirst: playerFirst, AILevel: aiLevel})
	if err != nil {
		return nil, errors.Wrap(err, "start new game")
	}
	return e, nil
}

// Run executes the game loop until a terminal result or the turn budget is
// exhausted. It returns the result, whether the game actually finished, and
// the number of executed half-moves.
func (e *Engine) Run() (game.GameResult, bool, int, error) {
	g := e.Game
	log.Info().
		Stringer("side_to_move", g.SideToMove()).
		Int("ai_level", g.AILevel()).
		Msg("game started")

	for {
		if g.Phase() == game.PhaseGameOver {
			result, _ := g.Result()
			log.Info().
				Stringer("result", result).
				Int("half_moves", g.HistoryLen()).
				Msg("game over")
			return result, true, g.HistoryLen(), nil
		}
		if g.HistoryLen() >= e.maxTurns {
			break
		}

		var err error
		switch g.Phase() {
		case game.PhaseWaitingForPlayer:
			err = e.submitPlayerMove()
		case game.PhaseAIThinking:
			err = e.submitAIMove()
		case game.PhasePieceMoving:
			err = g.HandleEvent(game.PieceMoveAnimationComplete{Moved: true})
		case game.PhaseCheckingCapture:
			err = g.HandleEvent(game.CaptureCheckComplete{HasCapture: len(g.LastCaptured()) > 0})
		case game.PhaseCaptureAnimating:
			err = g.HandleEvent(game.CaptureAnimationComplete{})
		case game.PhaseCheckingGameEnd:
			result, over := g.CheckGameEnd()
			err = g.HandleEvent(game.GameEndCheckComplete{Result: result, Over: over})
		default:
			return 0, false, g.HistoryLen(), errors.Errorf("engine cannot drive phase %s", g.Phase())
		}
		if err != nil {
			return 0, false, g.HistoryLen(), err
		}
	}

	log.Info().Int("half_moves", g.HistoryLen()).Msg("turn budget exhausted")
	return 0, false, g.HistoryLen(), nil
}

// submitPlayerMove feeds the player agent's choice through the same
// selection events a GUI would produce.
func (e *Engine) submitPlayerMove() error {
	g := e.Game
	move, err := e.PlayerAgent.FindMove(g.Board(), g.PlayerSide())
	if err != nil {
		return errors.Wrap(err, "player agent")
	}

	piece := g.Board().PieceAt(move.From.X, move.From.Y)
	if piece == nil {
		return errors.Errorf("player agent chose empty origin %s", move.From)
	}
	if !game.IsValidMove(g.Board(), move.From, move.To, g.PlayerSide()) {
		return errors.Errorf("player agent chose illegal move %s -> %s", move.From, move.To)
	}

	if err := g.HandleEvent(game.PlayerSelectPiece{PieceID: piece.ID, From: move.From}); err != nil {
		return err
	}
	return g.HandleEvent(game.PlayerClickTarget{Target: move.To})
}

func (e *Engine) submitAIMove() error {
	g := e.Game
	move, err := e.AIAgent.FindMove(g.Board(), g.PlayerSide().Opposite())
	if err != nil {
		return errors.Wrap(err, "ai agent")
	}
	return g.HandleEvent(game.AIMoveSelected{From: move.From, To: move.To})
}
