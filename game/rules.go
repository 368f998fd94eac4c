package game

import "sort"

// Move is a single orthogonal step of one piece.
type Move struct {
	From Pos
	To   Pos
}

// directions are the four orthogonal steps, in the fixed order move
// enumeration uses. The order is not meaningful but must stay deterministic
// so random tiers reproduce under a pinned seed.
var directions = [4]Pos{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// IsValidMove reports whether moving side's piece from from to to is legal:
// an active piece of side stands at from, to is an empty in-bounds
// intersection, and the step is exactly one intersection along a single axis.
func IsValidMove(b *Board, from, to Pos, side Side) bool {
	piece := b.PieceAt(from.X, from.Y)
	if piece == nil || piece.Side != side || !piece.Active {
		return false
	}
	if !IsValidPos(to.X, to.Y) || !b.IsEmpty(to.X, to.Y) {
		return false
	}

	dx := to.X - from.X
	dy := to.Y - from.Y
	horizontal := dy == 0 && (dx == 1 || dx == -1)
	vertical := dx == 0 && (dy == 1 || dy == -1)
	return horizontal || vertical
}

// CalculateCaptures resolves captures for the piece that just moved, against
// the board as it stands after the relocation. In single-piece mode the
// carry rule applies; otherwise the two-vs-one rule applies. Both axes are
// checked independently and the merged result is de-duplicated. The board is
// not mutated.
func CalculateCaptures(b *Board, movedPieceID int) []int {
	moved := b.PieceByID(movedPieceID)
	if moved == nil || !moved.Active {
		return nil
	}

	var captured []int
	if b.IsSinglePieceMode() {
		captured = appendCarryCaptures(b, moved, true, captured)
		captured = appendCarryCaptures(b, moved, false, captured)
	} else {
		captured = appendTwoVsOneCapture(b, moved, true, captured)
		captured = appendTwoVsOneCapture(b, moved, false, captured)
	}
	return captured
}

// appendTwoVsOneCapture checks the two-vs-one rule on one axis through the
// moved piece. A capture requires exactly 3 active pieces on the line,
// forming a contiguous run with both flanks open or off-board, split 2 of
// the mover's side against 1 opponent, the pair adjacent (the opponent at an
// end, never sandwiched) and containing the moved piece.
func appendTwoVsOneCapture(b *Board, moved *Piece, horizontal bool, captured []int) []int {
	var line []*Piece
	for i := range b.Pieces {
		p := &b.Pieces[i]
		if !p.Active {
			continue
		}
		if horizontal && p.Pos.Y == moved.Pos.Y || !horizontal && p.Pos.X == moved.Pos.X {
			line = append(line, p)
		}
	}
	if len(line) != 3 {
		return captured
	}

	coord := func(p *Piece) int {
		if horizontal {
			return p.Pos.X
		}
		return p.Pos.Y
	}
	sort.Slice(line, func(i, j int) bool { return coord(line[i]) < coord(line[j]) })

	// Contiguous run of 3, no gaps.
	if coord(line[1])-coord(line[0]) != 1 || coord(line[2])-coord(line[1]) != 1 {
		return captured
	}

	// Both flanks must be off-board or empty.
	if !flankOpen(b, moved.Pos, horizontal, coord(line[0])-1) {
		return captured
	}
	if !flankOpen(b, moved.Pos, horizontal, coord(line[2])+1) {
		return captured
	}

	var own, enemy []*Piece
	for _, p := range line {
		if p.Side == moved.Side {
			own = append(own, p)
		} else {
			enemy = append(enemy, p)
		}
	}
	if len(own) != 2 || len(enemy) != 1 {
		return captured
	}

	// The friendly pair must be adjacent within the run: a sandwiched enemy
	// ("friend-enemy-friend") never captures.
	if line[1].Side != moved.Side {
		return captured
	}
	if own[0].ID != moved.ID && own[1].ID != moved.ID {
		return captured
	}

	return appendCapturedID(captured, enemy[0].ID)
}

// flankOpen reports whether the cell at the given line coordinate, just
// outside the run, is off-board or empty.
func flankOpen(b *Board, through Pos, horizontal bool, c int) bool {
	var x, y int
	if horizontal {
		x, y = c, through.Y
	} else {
		x, y = through.X, c
	}
	return !IsValidPos(x, y) || b.IsEmpty(x, y)
}

// appendCarryCaptures checks the single-piece carry rule on one axis: if
// both immediate neighbors of the moved piece exist and are active opposing
// pieces, both are captured.
func appendCarryCaptures(b *Board, moved *Piece, horizontal bool, captured []int) []int {
	dx, dy := 0, 1
	if horizontal {
		dx, dy = 1, 0
	}

	nx, ny := moved.Pos.X+dx, moved.Pos.Y+dy
	rx, ry := moved.Pos.X-dx, moved.Pos.Y-dy
	if !IsValidPos(nx, ny) || !IsValidPos(rx, ry) {
		return captured
	}

	p1 := b.PieceAt(nx, ny)
	p2 := b.PieceAt(rx, ry)
	if p1 == nil || p2 == nil {
		return captured
	}
	if p1.Side != moved.Side && p2.Side != moved.Side && p1.Active && p2.Active {
		captured = appendCapturedID(captured, p1.ID)
		captured = appendCapturedID(captured, p2.ID)
	}
	return captured
}

func appendCapturedID(captured []int, id int) []int {
	for _, c := range captured {
		if c == id {
			return captured
		}
	}
	return append(captured, id)
}

// IsStalemated reports whether no active piece of side has any empty
// orthogonal in-bounds neighbor. A stalemated side loses immediately.
func IsStalemated(b *Board, side Side) bool {
	for _, piece := range b.ActivePiecesOf(side) {
		for _, d := range directions {
			nx, ny := piece.Pos.X+d.X, piece.Pos.Y+d.Y
			if IsValidPos(nx, ny) && b.IsEmpty(nx, ny) {
				return false
			}
		}
	}
	return true
}

// CheckGameEnd evaluates terminal conditions in order: a side with zero
// pieces loses, both sides at 2 or fewer pieces is a draw, and a stalemated
// side-to-move loses. The outcome is mapped onto the human player's
// perspective. The second return is false while the game continues.
func CheckGameEnd(b *Board, sideToMove, playerSide Side) (GameResult, bool) {
	blackCount := b.CountActive(Black)
	whiteCount := b.CountActive(White)

	if blackCount == 0 {
		return resultForWinner(White, playerSide), true
	}
	if whiteCount == 0 {
		return resultForWinner(Black, playerSide), true
	}

	if blackCount <= 2 && whiteCount <= 2 {
		return Draw, true
	}

	if IsStalemated(b, sideToMove) {
		return resultForWinner(sideToMove.Opposite(), playerSide), true
	}

	return 0, false
}

func resultForWinner(winner, playerSide Side) GameResult {
	if winner == playerSide {
		return PlayerWin
	}
	return AIWin
}

// GetValidMoves enumerates every legal single-step move for side, iterating
// pieces in id order and directions in fixed order so the result is
// deterministic for a given board.
func GetValidMoves(b *Board, side Side) []Move {
	var moves []Move
	for _, piece := range b.ActivePiecesOf(side) {
		for _, d := range directions {
			nx, ny := piece.Pos.X+d.X, piece.Pos.Y+d.Y
			if IsValidPos(nx, ny) && b.IsEmpty(nx, ny) {
				moves = append(moves, Move{From: piece.Pos, To: Pos{X: nx, Y: ny}})
			}
		}
	}
	return moves
}
