package searchworker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdada-go/engine/internal/chesscore"
	"github.com/abdada-go/engine/internal/cooperation"
	"github.com/abdada-go/engine/internal/ttable"
)

func newSoloWorker(t *testing.T, fen string, mode cooperation.Mode) (*Worker, *chesscore.Board) {
	t.Helper()
	pos, err := chesscore.ParseFEN(fen)
	require.NoError(t, err)
	tt := ttable.NewTable(1, ttable.DepthFirst{})
	finished := &atomic.Bool{}
	w := NewWorker(pos, tt, nil, cooperation.New(mode), finished, 1, true)
	return w, pos
}

func TestRootMaxStartPositionDepthOne(t *testing.T) {
	w, _ := newSoloWorker(t, chesscore.StartFEN, cooperation.None)
	move, eval, published, _ := w.RootMax(1)
	assert.True(t, published)
	assert.NotEqual(t, chesscore.MoveNone, move)
	assert.GreaterOrEqual(t, eval, chesscore.Eval(-50))
	assert.LessOrEqual(t, eval, chesscore.Eval(50))
}

func TestRootMaxStartPositionDepthFour(t *testing.T) {
	w, _ := newSoloWorker(t, chesscore.StartFEN, cooperation.None)
	move, eval, published, _ := w.RootMax(4)
	assert.True(t, published)
	assert.NotEqual(t, chesscore.MoveNone, move)
	assert.GreaterOrEqual(t, eval, chesscore.Eval(-80))
	assert.LessOrEqual(t, eval, chesscore.Eval(80))
	assert.Greater(t, w.Nodes(), uint64(100))
}

func TestRootMaxFindsMateInOne(t *testing.T) {
	w, _ := newSoloWorker(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", cooperation.None)
	move, eval, published, _ := w.RootMax(2)
	assert.True(t, published)
	assert.Equal(t, chesscore.NewSquare(0, 0), move.From())
	assert.Equal(t, chesscore.NewSquare(0, 7), move.To())
	assert.GreaterOrEqual(t, eval, chesscore.Eval(900))
}

func TestNegationNeverOverflowsEvalRange(t *testing.T) {
	w, pos := newSoloWorker(t, chesscore.StartFEN, cooperation.None)
	e := pos.Evaluate()
	neg := -e
	assert.GreaterOrEqual(t, neg, chesscore.Eval(minEval))
	assert.LessOrEqual(t, neg, chesscore.Eval(maxEval))
	_ = w
}

func TestABDADAPolicyProducesSameEvalAsSequential(t *testing.T) {
	seqW, _ := newSoloWorker(t, chesscore.StartFEN, cooperation.None)
	_, seqEval, _, _ := seqW.RootMax(3)

	abdadaW, _ := newSoloWorker(t, chesscore.StartFEN, cooperation.ABDADA)
	_, abdadaEval, _, _ := abdadaW.RootMax(3)

	assert.Equal(t, seqEval, abdadaEval, "single-worker eval must match regardless of cooperation policy")
}
