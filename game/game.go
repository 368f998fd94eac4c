package game

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DefaultAILevel is the difficulty used when none is configured.
const DefaultAILevel = 3

// Game is the aggregate root owning the board, the state machine and the
// move history. It is mutated exclusively through HandleEvent; every other
// method is a read-only query. The host must not share a Game between
// concurrent actors.
type Game struct {
	board        *Board
	state        State
	playerSide   Side
	currentTurn  Side
	history      []MoveRecord
	aiLevel      int
	selected     *SelectedPiece
	pending      *PendingMove
	lastCaptured []int
	result       *GameResult
}

// New returns a game in PhaseNewGame awaiting a StartNewGame event.
func New() *Game {
	return &Game{
		board:       NewBoard(),
		state:       State{Phase: PhaseNewGame},
		playerSide:  Black,
		currentTurn: Black,
		aiLevel:     DefaultAILevel,
	}
}

// Board returns the live board. Callers treat it as read-only.
func (g *Game) Board() *Board { return g.board }

// State returns the current phase and, in PhaseGameOver, the bound result.
func (g *Game) State() State { return g.state }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.state.Phase }

// PlayerSide returns the side the human controls.
func (g *Game) PlayerSide() Side { return g.playerSide }

// SideToMove returns the side whose half-move is in progress.
func (g *Game) SideToMove() Side { return g.currentTurn }

// AILevel returns the configured difficulty in 1..5.
func (g *Game) AILevel() int { return g.aiLevel }

// HistoryLen returns the number of executed half-moves on the undo stack.
func (g *Game) HistoryLen() int { return len(g.history) }

// LastCaptured returns the ids captured by the most recent half-move, for
// the animation layer to know what to remove.
func (g *Game) LastCaptured() []int { return g.lastCaptured }

// Selected returns the transient selection, or nil outside PhasePieceSelected.
func (g *Game) Selected() *SelectedPiece { return g.selected }

// Pending returns the move handed to the animation layer, or nil.
func (g *Game) Pending() *PendingMove { return g.pending }

// Result returns the last terminal result, if any.
func (g *Game) Result() (GameResult, bool) {
	if g.result == nil {
		return 0, false
	}
	return *g.result, true
}

// CanUndo reports whether an undo request would be accepted: the phase must
// offer the action and at least one half-move must be on the stack.
func (g *Game) CanUndo() bool {
	interactive := g.state.Phase == PhaseWaitingForPlayer || g.state.Phase == PhaseGameOver
	return interactive && len(g.history) > 0
}

// CheckGameEnd evaluates the terminal conditions for the current position.
func (g *Game) CheckGameEnd() (GameResult, bool) {
	return CheckGameEnd(g.board, g.currentTurn, g.playerSide)
}

// StalemateResult returns the loss result for the side to move if it is
// stalemated, re-checked immediately after every turn switch.
func (g *Game) StalemateResult() (GameResult, bool) {
	if !IsStalemated(g.board, g.currentTurn) {
		return 0, false
	}
	return resultForWinner(g.currentTurn.Opposite(), g.playerSide), true
}

// HandleEvent drives the state machine. Events that do not match the
// current phase are silently ignored; only an illegal board operation
// surfaces an error, and the machine lands in a playable phase regardless.
func (g *Game) HandleEvent(event Event) error {
	switch g.state.Phase {
	case PhaseNewGame:
		if e, ok := event.(StartNewGame); ok {
			g.startNewGame(e.PlayerFirst, e.AILevel)
		}

	case PhaseWaitingForPlayer:
		switch e := event.(type) {
		case PlayerSelectPiece:
			if g.canPieceMove(e.PieceID) {
				g.selected = &SelectedPiece{PieceID: e.PieceID, From: e.From}
				g.state.Phase = PhasePieceSelected
			}
		case StartUndo:
			if g.CanUndo() {
				g.state.Phase = PhaseUndoAnimating
			}
		}

	case PhasePieceSelected:
		switch e := event.(type) {
		case PlayerClickTarget:
			if g.selected != nil {
				g.pending = &PendingMove{From: g.selected.From, To: e.Target, IsAI: false}
				g.selected = nil
				g.state.Phase = PhasePieceMoving
			}
		case PlayerClickInvalid, PlayerCancel:
			g.selected = nil
			g.state.Phase = PhaseWaitingForPlayer
		}

	case PhasePieceMoving:
		if e, ok := event.(PieceMoveAnimationComplete); ok && g.pending != nil {
			pending := *g.pending
			g.pending = nil
			if !e.Moved {
				g.state.Phase = PhaseWaitingForPlayer
				return nil
			}
			side := g.playerSide
			if pending.IsAI {
				side = g.playerSide.Opposite()
			}
			record, err := g.board.ExecuteMove(pending.From, pending.To, side)
			if err != nil {
				g.state.Phase = PhaseWaitingForPlayer
				return errors.Wrap(err, "execute move")
			}
			g.lastCaptured = capturedIDs(record)
			g.history = append(g.history, record)
			g.state.Phase = PhaseCheckingCapture
		}

	case PhaseCheckingCapture:
		if e, ok := event.(CaptureCheckComplete); ok {
			if e.HasCapture {
				g.state.Phase = PhaseCaptureAnimating
			} else {
				g.state.Phase = PhaseCheckingGameEnd
			}
		}

	case PhaseCaptureAnimating:
		if _, ok := event.(CaptureAnimationComplete); ok {
			g.state.Phase = PhaseCheckingGameEnd
		}

	case PhaseCheckingGameEnd:
		if e, ok := event.(GameEndCheckComplete); ok {
			if e.Over {
				g.finish(e.Result)
				return nil
			}
			g.currentTurn = g.currentTurn.Opposite()
			if result, stalemated := g.StalemateResult(); stalemated {
				g.finish(result)
				return nil
			}
			if g.currentTurn == g.playerSide {
				g.state.Phase = PhaseWaitingForPlayer
			} else {
				g.state.Phase = PhaseAIThinking
			}
		}

	case PhaseGameOver:
		if e, ok := event.(DialogAction); ok {
			switch e.Choice {
			case DialogUndo:
				if g.CanUndo() {
					g.state.Phase = PhaseUndoAnimating
				}
			case DialogNewGame:
				g.state = State{Phase: PhaseNewGame}
			case DialogConfirm:
				g.startNewGame(g.playerSide == Black, g.aiLevel)
			}
		}

	case PhaseAIThinking:
		if e, ok := event.(AIMoveSelected); ok {
			g.pending = &PendingMove{From: e.From, To: e.To, IsAI: true}
			g.state.Phase = PhasePieceMoving
		}

	case PhaseUndoAnimating:
		if _, ok := event.(UndoAnimationComplete); ok {
			g.performUndo()
			g.state = State{Phase: PhaseWaitingForPlayer}
		}
	}

	return nil
}

func (g *Game) startNewGame(playerFirst bool, aiLevel int) {
	g.board = NewBoard()
	g.playerSide = White
	if playerFirst {
		g.playerSide = Black
	}
	g.currentTurn = FirstMover()
	g.history = nil
	g.selected = nil
	g.pending = nil
	g.lastCaptured = nil
	g.result = nil
	g.aiLevel = clampLevel(aiLevel)

	if playerFirst {
		g.state = State{Phase: PhaseWaitingForPlayer}
	} else {
		g.state = State{Phase: PhaseAIThinking}
	}
	log.Debug().
		Bool("player_first", playerFirst).
		Int("ai_level", g.aiLevel).
		Msg("new game started")
}

func (g *Game) finish(result GameResult) {
	r := result
	g.result = &r
	g.state = State{Phase: PhaseGameOver, Result: result}
	log.Debug().Stringer("result", result).Msg("game over")
}

// canPieceMove reports whether the piece belongs to the human, is active,
// and has at least one legal destination.
func (g *Game) canPieceMove(pieceID int) bool {
	piece := g.board.PieceByID(pieceID)
	if piece == nil || piece.Side != g.playerSide || !piece.Active {
		return false
	}
	for _, d := range directions {
		nx, ny := piece.Pos.X+d.X, piece.Pos.Y+d.Y
		if IsValidPos(nx, ny) && g.board.IsEmpty(nx, ny) {
			return true
		}
	}
	return false
}

// performUndo reverts up to two half-moves (the computer's last and the
// human's preceding one) so control never returns mid-turn. Side-to-move is
// forced back to the human and any stored result is cleared regardless of
// how many records were actually popped.
func (g *Game) performUndo() {
	for i := 0; i < 2 && len(g.history) > 0; i++ {
		record := g.history[len(g.history)-1]
		g.history = g.history[:len(g.history)-1]
		g.board.UndoMove(record)
		g.currentTurn = g.currentTurn.Opposite()
	}
	g.currentTurn = g.playerSide
	g.lastCaptured = nil
	g.result = nil
}

func capturedIDs(record MoveRecord) []int {
	if len(record.Captured) == 0 {
		return nil
	}
	ids := make([]int, len(record.Captured))
	for i, c := range record.Captured {
		ids[i] = c.PieceID
	}
	return ids
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}
