package searcher

import "github.com/yin-hai-bo/Six-Rush/game"

// Evaluation weights. The stalemate term dominates every other term by
// construction.
const (
	materialWeight       = 100
	mobilityWeight       = 5
	stalemateScore       = 10000
	confinementWeight    = 50
	proximityWeight      = 10
	proximityBase        = 6
	lonePiecePenalty     = 200
	orthogonalDirections = 4
)

// Evaluate scores the board from aiSide's perspective: material and mobility
// differences, a dominant stalemate term, and endgame shaping that rewards
// boxing in a lone opposing piece and penalizes being the lone side.
func Evaluate(board *game.Board, aiSide game.Side) int {
	playerSide := aiSide.Opposite()
	aiCount := board.CountActive(aiSide)
	playerCount := board.CountActive(playerSide)

	score := (aiCount - playerCount) * materialWeight

	aiMoves := len(game.GetValidMoves(board, aiSide))
	playerMoves := len(game.GetValidMoves(board, playerSide))
	score += (aiMoves - playerMoves) * mobilityWeight

	if game.IsStalemated(board, playerSide) {
		score += stalemateScore
	}
	if game.IsStalemated(board, aiSide) {
		score -= stalemateScore
	}

	if playerCount == 1 && aiCount >= 2 {
		score += loneOpponentShaping(board, aiSide, playerSide)
	}
	if aiCount == 1 && playerCount >= 2 {
		score -= lonePiecePenalty
	}

	return score
}

// loneOpponentShaping rewards shrinking the lone opposing piece's room and
// closing the searcher's pieces in on it for a future carry capture.
func loneOpponentShaping(board *game.Board, aiSide, playerSide game.Side) int {
	lone := board.ActivePiecesOf(playerSide)
	if len(lone) == 0 {
		return 0
	}
	target := lone[0].Pos

	score := (orthogonalDirections - emptyNeighbors(board, target)) * confinementWeight
	for _, piece := range board.ActivePiecesOf(aiSide) {
		dist := abs(piece.Pos.X-target.X) + abs(piece.Pos.Y-target.Y)
		score += (proximityBase - dist) * proximityWeight
	}
	return score
}

func emptyNeighbors(board *game.Board, pos game.Pos) int {
	steps := [4]game.Pos{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}
	count := 0
	for _, d := range steps {
		nx, ny := pos.X+d.X, pos.Y+d.Y
		if game.IsValidPos(nx, ny) && board.IsEmpty(nx, ny) {
			count++
		}
	}
	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
