package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	require.Len(t, b.Pieces, 12, "Board should start with 12 pieces")
	require.Equal(t, 6, b.CountActive(Black), "Black should start with 6 pieces")
	require.Equal(t, 6, b.CountActive(White), "White should start with 6 pieces")
	require.False(t, b.IsSinglePieceMode(), "Initial board should not be in single-piece mode")

	seen := map[int]bool{}
	for _, p := range b.Pieces {
		require.False(t, seen[p.ID], "Piece ids should be unique")
		seen[p.ID] = true
		require.True(t, p.Active, "All pieces should start active")
		require.True(t, IsValidPos(p.Pos.X, p.Pos.Y), "All pieces should start in bounds")
	}
}

func TestSpatialQueries(t *testing.T) {
	b := NewBoard()

	p := b.PieceAt(0, 0)
	require.NotNil(t, p, "A piece should occupy (0,0) initially")
	require.Equal(t, Black, p.Side)

	require.Nil(t, b.PieceAt(1, 1), "(1,1) should be empty initially")
	require.True(t, b.IsEmpty(2, 2))
	require.False(t, b.IsEmpty(0, 3))

	byID := b.PieceByID(p.ID)
	require.Equal(t, p, byID, "PieceByID should find the same record")
	require.Nil(t, b.PieceByID(99), "Unknown id should return nil")

	require.True(t, IsValidPos(0, 0))
	require.True(t, IsValidPos(3, 3))
	require.False(t, IsValidPos(-1, 0), "Signed probe below bounds should be invalid")
	require.False(t, IsValidPos(0, 4), "Probe above bounds should be invalid")
}

func TestExecuteMoveNoPieceAtOrigin(t *testing.T) {
	b := NewBoard()

	_, err := b.ExecuteMove(Pos{1, 1}, Pos{1, 2}, Black)

	require.Error(t, err, "Moving from an empty intersection should fail")
	require.Contains(t, err.Error(), "no piece at origin")
}

func TestExecuteMoveUndoRoundTrip(t *testing.T) {
	t.Run("plain move without capture", func(t *testing.T) {
		b := NewBoard()
		before := b.Copy()

		record, err := b.ExecuteMove(Pos{1, 0}, Pos{1, 1}, Black)
		require.NoError(t, err)
		require.Empty(t, record.Captured, "Opening move should not capture")
		require.Nil(t, b.PieceAt(1, 0), "Origin should be empty after the move")
		require.NotNil(t, b.PieceAt(1, 1), "Destination should be occupied after the move")

		b.UndoMove(record)
		require.Equal(t, before.Pieces, b.Pieces, "Undo should restore the board bit for bit")
	})

	t.Run("capturing move restores captured positions", func(t *testing.T) {
		b := &Board{Pieces: []Piece{
			NewPiece(1, Black, 1, 0),
			NewPiece(2, Black, 2, 1),
			NewPiece(3, White, 3, 1),
			NewPiece(4, White, 0, 3),
		}}
		before := b.Copy()

		record, err := b.ExecuteMove(Pos{1, 0}, Pos{1, 1}, Black)
		require.NoError(t, err)
		require.Equal(t, []CapturedRecord{{PieceID: 3, Pos: Pos{3, 1}}}, record.Captured,
			"The lone white piece at the end of the run should be captured at its position")
		require.False(t, b.PieceByID(3).Active, "Captured piece should be deactivated")
		require.False(t, record.WasSinglePieceMode, "Mode snapshot should reflect the pre-move board")

		b.UndoMove(record)
		require.Equal(t, before.Pieces, b.Pieces, "Undo should restore captured pieces exactly")
	})

	t.Run("carry capture round trip", func(t *testing.T) {
		b := &Board{Pieces: []Piece{
			NewPiece(1, Black, 1, 2),
			NewPiece(2, White, 0, 1),
			NewPiece(3, White, 2, 1),
			NewPiece(4, White, 3, 3),
		}}
		before := b.Copy()

		record, err := b.ExecuteMove(Pos{1, 2}, Pos{1, 1}, Black)
		require.NoError(t, err)
		require.Len(t, record.Captured, 2, "Carry capture should take both neighbors")
		require.True(t, record.WasSinglePieceMode)

		b.UndoMove(record)
		require.Equal(t, before.Pieces, b.Pieces)
	})
}
