package game

import "fmt"

// Side identifies which player owns a piece.
type Side int

const (
	Black Side = iota
	White
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Black {
		return White
	}
	return Black
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// FirstMover returns the side that opens every game. Black always moves first.
func FirstMover() Side {
	return Black
}

// Pos is a board intersection. Valid coordinates are in [0,3]x[0,3].
type Pos struct {
	X int
	Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Piece is one of the 12 stones created at game start.
type Piece struct {
	ID     int  // Unique id in 1..12, stable for the piece's lifetime
	Side   Side // Owning side, immutable
	Pos    Pos  // Current position; for a captured piece, the position at capture time
	Active bool // True while on the board, false once captured
}

// NewPiece creates an active piece at the given intersection.
func NewPiece(id int, side Side, x, y int) Piece {
	return Piece{ID: id, Side: side, Pos: Pos{X: x, Y: y}, Active: true}
}

// Name returns a short display name for logs, e.g. "black-3".
func (p Piece) Name() string {
	return fmt.Sprintf("%s-%d", p.Side, p.ID)
}

// InitialPieces returns the fixed starting layout: 6 black stones on the
// bottom two rows and 6 white stones mirrored on the top two rows.
func InitialPieces() []Piece {
	blackStart := []Pos{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {3, 1}}
	whiteStart := []Pos{{0, 3}, {1, 3}, {2, 3}, {3, 3}, {0, 2}, {3, 2}}

	pieces := make([]Piece, 0, len(blackStart)+len(whiteStart))
	id := 1
	for _, pos := range blackStart {
		pieces = append(pieces, NewPiece(id, Black, pos.X, pos.Y))
		id++
	}
	for _, pos := range whiteStart {
		pieces = append(pieces, NewPiece(id, White, pos.X, pos.Y))
		id++
	}
	return pieces
}
