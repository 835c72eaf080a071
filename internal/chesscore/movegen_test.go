package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMateInOnePositionHasRookLiftMate(t *testing.T) {
	b, err := ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	var mateMove Move
	for _, m := range b.GenerateMoves(All) {
		if m.From() == NewSquare(0, 0) && m.To() == NewSquare(0, 7) {
			mateMove = m
		}
	}
	require.NotEqual(t, MoveNone, mateMove, "Ra8 must be a legal move")

	b.Make(mateMove)
	assert.True(t, b.InCheck(Black))
	assert.Empty(t, b.GenerateMoves(All), "black king has no legal reply to Ra8#")
	b.Unmake()
}

func TestCapturesOnlyExcludesQuietMoves(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	for _, m := range b.GenerateMoves(Captures) {
		assert.True(t, m.IsCapture())
	}
}

func TestEnPassantCapture(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	var ep Move
	for _, m := range b.GenerateMoves(All) {
		if m.IsEnPassant() {
			ep = m
		}
	}
	require.NotEqual(t, MoveNone, ep)
	b.Make(ep)
	assert.Equal(t, Empty, b.At(NewSquare(3, 4)), "captured pawn must be removed")
	b.Unmake()
	assert.Equal(t, MakePiece(Black, Pawn), b.At(NewSquare(3, 4)))
}

func TestCastlingKingSide(t *testing.T) {
	b, err := ParseFEN("rnbqk2r/pppp1ppp/5n2/4p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	require.NoError(t, err)
	var castle Move
	for _, m := range b.GenerateMoves(All) {
		if m.IsCastle() {
			castle = m
		}
	}
	require.NotEqual(t, MoveNone, castle)
	b.Make(castle)
	assert.Equal(t, MakePiece(White, King), b.At(NewSquare(6, 0)))
	assert.Equal(t, MakePiece(White, Rook), b.At(NewSquare(5, 0)))
	b.Unmake()
	assert.Equal(t, MakePiece(White, King), b.At(NewSquare(4, 0)))
}
