package game

import "github.com/pkg/errors"

// BoardSize is the number of intersections per axis.
const BoardSize = 4

// Board holds all 12 piece records, active and captured alike. Captured
// pieces stay in the collection with Active=false so undo can restore them
// exactly, including the position they held when captured.
type Board struct {
	Pieces []Piece
}

// NewBoard returns a board with the fixed 12-piece starting layout.
func NewBoard() *Board {
	return &Board{Pieces: InitialPieces()}
}

// EmptyBoard returns a board with no pieces.
func EmptyBoard() *Board {
	return &Board{}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	pieces := make([]Piece, len(b.Pieces))
	copy(pieces, b.Pieces)
	return &Board{Pieces: pieces}
}

// IsValidPos reports whether (x,y) is on the board. It accepts any signed
// coordinates so callers can probe neighbors without guarding first.
func IsValidPos(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// PieceAt returns the active piece occupying (x,y), or nil.
func (b *Board) PieceAt(x, y int) *Piece {
	for i := range b.Pieces {
		p := &b.Pieces[i]
		if p.Active && p.Pos.X == x && p.Pos.Y == y {
			return p
		}
	}
	return nil
}

// PieceByID returns the piece with the given id, active or not, or nil.
func (b *Board) PieceByID(id int) *Piece {
	for i := range b.Pieces {
		if b.Pieces[i].ID == id {
			return &b.Pieces[i]
		}
	}
	return nil
}

// IsEmpty reports whether no active piece occupies (x,y).
func (b *Board) IsEmpty(x, y int) bool {
	return b.PieceAt(x, y) == nil
}

// ActivePiecesOf returns the active pieces of a side in stable id order.
func (b *Board) ActivePiecesOf(side Side) []*Piece {
	var pieces []*Piece
	for i := range b.Pieces {
		p := &b.Pieces[i]
		if p.Active && p.Side == side {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// CountActive returns the number of active pieces of a side.
func (b *Board) CountActive(side Side) int {
	count := 0
	for i := range b.Pieces {
		if b.Pieces[i].Active && b.Pieces[i].Side == side {
			count++
		}
	}
	return count
}

// IsSinglePieceMode reports whether either side is down to exactly one
// active piece. The capture rule switches from two-vs-one to carry capture
// while this holds.
func (b *Board) IsSinglePieceMode() bool {
	return b.CountActive(Black) == 1 || b.CountActive(White) == 1
}

// CapturedRecord remembers a captured piece and where it stood when taken.
type CapturedRecord struct {
	PieceID int
	Pos     Pos
}

// MoveRecord is the immutable record of one executed half-move, carrying
// enough data to invert it exactly.
type MoveRecord struct {
	PieceID  int
	From     Pos
	To       Pos
	Captured []CapturedRecord
	// WasSinglePieceMode is the board's single-piece mode before the piece
	// was relocated. Relocation never changes an active count, so this
	// equals the mode CalculateCaptures observes on the post-move board.
	WasSinglePieceMode bool
	Side               Side
}

// ExecuteMove relocates the piece at from to to, resolves captures against
// the post-move board, deactivates the captured pieces, and returns a record
// that UndoMove inverts exactly. Legality beyond "a piece stands at from" is
// the rules functions' concern, not the board's.
func (b *Board) ExecuteMove(from, to Pos, side Side) (MoveRecord, error) {
	wasSingle := b.IsSinglePieceMode()

	piece := b.PieceAt(from.X, from.Y)
	if piece == nil {
		return MoveRecord{}, errors.Errorf("no piece at origin %s", from)
	}

	piece.Pos = to
	capturedIDs := CalculateCaptures(b, piece.ID)

	captured := make([]CapturedRecord, 0, len(capturedIDs))
	for _, id := range capturedIDs {
		if p := b.PieceByID(id); p != nil {
			captured = append(captured, CapturedRecord{PieceID: id, Pos: p.Pos})
			p.Active = false
		}
	}

	return MoveRecord{
		PieceID:            piece.ID,
		From:               from,
		To:                 to,
		Captured:           captured,
		WasSinglePieceMode: wasSingle,
		Side:               side,
	}, nil
}

// UndoMove is the exact inverse of ExecuteMove for the record it produced:
// the moved piece returns to its origin and every captured piece reactivates
// at its capture-time position.
func (b *Board) UndoMove(record MoveRecord) {
	if p := b.PieceByID(record.PieceID); p != nil {
		p.Pos = record.From
		p.Active = true
	}
	for _, c := range record.Captured {
		if p := b.PieceByID(c.PieceID); p != nil {
			p.Pos = c.Pos
			p.Active = true
		}
	}
}
