package game

// Phase is the state machine's current phase. Animation phases exist so a
// host can play tweens between half-move resolution steps; a headless host
// simply reports the completion events immediately.
type Phase int

const (
	// PhaseNewGame is the initial phase, re-entered when a new game is
	// requested from the game-over dialog.
	PhaseNewGame Phase = iota
	// PhaseWaitingForPlayer waits for the human to pick a piece or undo.
	PhaseWaitingForPlayer
	// PhasePieceSelected holds a selected piece until a target is clicked.
	PhasePieceSelected
	// PhasePieceMoving runs while the move animation plays.
	PhasePieceMoving
	// PhaseCheckingCapture waits for the host to acknowledge capture results.
	PhaseCheckingCapture
	// PhaseCaptureAnimating runs while captured pieces animate away.
	PhaseCaptureAnimating
	// PhaseCheckingGameEnd waits for the host to acknowledge the end check.
	PhaseCheckingGameEnd
	// PhaseGameOver shows the result dialog.
	PhaseGameOver
	// PhaseAIThinking waits for the computer's move to be computed.
	PhaseAIThinking
	// PhaseUndoAnimating runs while the undo animation plays.
	PhaseUndoAnimating
)

func (p Phase) String() string {
	switch p {
	case PhaseNewGame:
		return "new_game"
	case PhaseWaitingForPlayer:
		return "waiting_for_player"
	case PhasePieceSelected:
		return "piece_selected"
	case PhasePieceMoving:
		return "piece_moving"
	case PhaseCheckingCapture:
		return "checking_capture"
	case PhaseCaptureAnimating:
		return "capture_animating"
	case PhaseCheckingGameEnd:
		return "checking_game_end"
	case PhaseGameOver:
		return "game_over"
	case PhaseAIThinking:
		return "ai_thinking"
	case PhaseUndoAnimating:
		return "undo_animating"
	}
	return "unknown"
}

// CanInteract reports whether the host should accept UI input in this phase.
func (p Phase) CanInteract() bool {
	return p == PhaseWaitingForPlayer || p == PhaseGameOver
}

// CanSelectPiece reports whether a piece click is meaningful in this phase.
func (p Phase) CanSelectPiece() bool {
	return p == PhaseWaitingForPlayer
}

// IsAnimating reports whether the phase represents a running animation.
func (p Phase) IsAnimating() bool {
	return p == PhasePieceMoving || p == PhaseCaptureAnimating || p == PhaseUndoAnimating
}

// NeedsAIMove reports whether the host owes the machine an AIMoveSelected event.
func (p Phase) NeedsAIMove() bool {
	return p == PhaseAIThinking
}

// GameResult is the terminal outcome, from the human player's perspective.
type GameResult int

const (
	PlayerWin GameResult = iota
	AIWin
	Draw
)

func (r GameResult) String() string {
	switch r {
	case PlayerWin:
		return "player_win"
	case AIWin:
		return "ai_win"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// State is the phase together with the result bound to it. Result is
// meaningful only while Phase is PhaseGameOver; binding the two keeps the
// dialog's outcome atomic with the phase that shows it.
type State struct {
	Phase  Phase
	Result GameResult
}

// SelectedPiece is the transient selection held during PhasePieceSelected.
type SelectedPiece struct {
	PieceID int
	From    Pos
}

// PendingMove hands a chosen move to the animation layer. IsAI records which
// seat the move belongs to, which also decides the side it executes as.
type PendingMove struct {
	From Pos
	To   Pos
	IsAI bool
}

// DialogChoice is a button on the game-over dialog.
type DialogChoice int

const (
	// DialogUndo rolls the last full turn back and resumes play.
	DialogUndo DialogChoice = iota
	// DialogNewGame returns to PhaseNewGame to await a StartNewGame event.
	DialogNewGame
	// DialogConfirm immediately restarts with the same leading side and level.
	DialogConfirm
)

// Event drives the state machine. Events that do not match the current
// phase are ignored.
type Event interface {
	isEvent()
}

// StartNewGame resets the board and history and begins play.
type StartNewGame struct {
	PlayerFirst bool
	AILevel     int
}

// PlayerSelectPiece reports the human clicking one of their pieces.
type PlayerSelectPiece struct {
	PieceID int
	From    Pos
}

// PlayerClickTarget reports the human clicking a destination intersection.
type PlayerClickTarget struct {
	Target Pos
}

// PlayerClickInvalid reports a click on a non-target intersection.
type PlayerClickInvalid struct{}

// PlayerCancel reports the human cancelling the selection.
type PlayerCancel struct{}

// PieceMoveAnimationComplete reports the move animation finishing. Moved is
// false when the piece was returned to its origin instead.
type PieceMoveAnimationComplete struct {
	Moved bool
}

// CaptureCheckComplete acknowledges the capture check.
type CaptureCheckComplete struct {
	HasCapture bool
}

// CaptureAnimationComplete reports the capture animation finishing.
type CaptureAnimationComplete struct{}

// GameEndCheckComplete acknowledges the terminal-condition check. Over is
// false when the game continues.
type GameEndCheckComplete struct {
	Result GameResult
	Over   bool
}

// AIMoveSelected reports the computer's chosen move.
type AIMoveSelected struct {
	From Pos
	To   Pos
}

// DialogAction reports a button press on the game-over dialog.
type DialogAction struct {
	Choice DialogChoice
}

// StartUndo requests an undo of the last full turn.
type StartUndo struct{}

// UndoAnimationComplete reports the undo animation finishing.
type UndoAnimationComplete struct{}

func (StartNewGame) isEvent()               {}
func (PlayerSelectPiece) isEvent()          {}
func (PlayerClickTarget) isEvent()          {}
func (PlayerClickInvalid) isEvent()         {}
func (PlayerCancel) isEvent()               {}
func (PieceMoveAnimationComplete) isEvent() {}
func (CaptureCheckComplete) isEvent()       {}
func (CaptureAnimationComplete) isEvent()   {}
func (GameEndCheckComplete) isEvent()       {}
func (AIMoveSelected) isEvent()             {}
func (DialogAction) isEvent()               {}
func (StartUndo) isEvent()                  {}
func (UndoAnimationComplete) isEvent()      {}
