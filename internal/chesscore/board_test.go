package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFENStartPosition(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, MakePiece(White, Rook), b.At(NewSquare(0, 0)))
	assert.Equal(t, MakePiece(Black, King), b.At(NewSquare(4, 7)))
	assert.Equal(t, WhiteKingSide|WhiteQueenSide|BlackKingSide|BlackQueenSide, b.castling)
}

func TestFENRoundTrip(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Equal(t, StartFEN, b.FEN())
}

func TestMakeUnmakeRestoresKey(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	before := b.Key()
	moves := b.GenerateMoves(All)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		b.Make(m)
		b.Unmake()
		assert.Equal(t, before, b.Key(), "unmake must restore the Zobrist key for %s", m)
	}
}

func TestMakeUnmakeRestoresFEN(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	for _, m := range b.GenerateMoves(All) {
		before := b.FEN()
		b.Make(m)
		b.Unmake()
		assert.Equal(t, before, b.FEN())
	}
}

func TestStartPositionMoveCount(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	assert.Len(t, b.GenerateMoves(All), 20)
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	require.NoError(t, err)
	c := b.Clone()
	moves := b.GenerateMoves(All)
	b.Make(moves[0])
	assert.NotEqual(t, b.Key(), c.Key())
	assert.Equal(t, White, c.SideToMove())
}

func TestInCheckDetection(t *testing.T) {
	b, err := ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.InCheck(White))
	assert.False(t, b.InCheck(Black))
}
