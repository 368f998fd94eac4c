package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Cell values in a Snapshot's occupancy array.
const (
	CellEmpty uint8 = 0
	CellBlack uint8 = 1
	CellWhite uint8 = 2
)

const piecesPerSide = 6

// Snapshot is the in-memory form a persistence collaborator saves and
// restores: a 16-cell occupancy array indexed y*4+x plus the human's side.
// Captured pieces and ids are not recorded; restoring assigns fresh
// sequential ids.
type Snapshot struct {
	Cells      [BoardSize * BoardSize]uint8
	PlayerSide Side
}

// TakeSnapshot captures the active occupancy of the board.
func TakeSnapshot(b *Board, playerSide Side) Snapshot {
	s := Snapshot{PlayerSide: playerSide}
	for i := range b.Pieces {
		p := &b.Pieces[i]
		if !p.Active {
			continue
		}
		cell := CellWhite
		if p.Side == Black {
			cell = CellBlack
		}
		s.Cells[p.Pos.Y*BoardSize+p.Pos.X] = cell
	}
	return s
}

// Validate collects every violation in the snapshot: unknown cell values and
// more than six pieces of a side.
func (s Snapshot) Validate() error {
	var result *multierror.Error
	blackCount, whiteCount := 0, 0
	for i, cell := range s.Cells {
		switch cell {
		case CellEmpty:
		case CellBlack:
			blackCount++
		case CellWhite:
			whiteCount++
		default:
			result = multierror.Append(result, errors.Errorf("cell %d holds unknown value %d", i, cell))
		}
	}
	if blackCount > piecesPerSide {
		result = multierror.Append(result, errors.Errorf("%d black pieces, at most %d allowed", blackCount, piecesPerSide))
	}
	if whiteCount > piecesPerSide {
		result = multierror.Append(result, errors.Errorf("%d white pieces, at most %d allowed", whiteCount, piecesPerSide))
	}
	return result.ErrorOrNil()
}

// RestoreBoard rebuilds a board from the snapshot, assigning fresh
// sequential ids in cell order, and returns it with the human's side.
func RestoreBoard(s Snapshot) (*Board, Side, error) {
	if err := s.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, "invalid snapshot")
	}

	board := EmptyBoard()
	id := 1
	for i, cell := range s.Cells {
		if cell == CellEmpty {
			continue
		}
		side := White
		if cell == CellBlack {
			side = Black
		}
		board.Pieces = append(board.Pieces, NewPiece(id, side, i%BoardSize, i/BoardSize))
		id++
	}
	return board, s.PlayerSide, nil
}

// IsInitialPosition reports whether the board holds exactly the fixed
// starting layout.
func IsInitialPosition(b *Board) bool {
	active := 0
	for i := range b.Pieces {
		if b.Pieces[i].Active {
			active++
		}
	}
	if active != 2*piecesPerSide {
		return false
	}

	for _, want := range InitialPieces() {
		p := b.PieceAt(want.Pos.X, want.Pos.Y)
		if p == nil || p.Side != want.Side {
			return false
		}
	}
	return true
}
