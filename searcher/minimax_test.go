package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"teeko/game"
)

func place(b *game.Board, piece game.Cell, coords ...game.Coord) {
	for _, c := range coords {
		b.Set(c.Row, c.Col, piece)
	}
}

func TestFindMoveTakesImmediateWin(t *testing.T) {
	// Black has three in a row; dropping at (0,3) wins immediately and
	// must beat any deeper heuristic value.
	var b game.Board
	place(&b, game.Black, game.Coord{Row: 0, Col: 0}, game.Coord{Row: 0, Col: 1}, game.Coord{Row: 0, Col: 2})
	place(&b, game.Red, game.Coord{Row: 4, Col: 0}, game.Coord{Row: 4, Col: 2}, game.Coord{Row: 4, Col: 4})

	for _, depth := range []int{1, 2, 3} {
		m := NewMinimax(game.Black, WithDepth(depth))
		move, value, ok := m.FindMove(b)

		require.True(t, ok)
		require.Equal(t, game.Move{{Row: 0, Col: 3}}, move, "depth %d", depth)
		require.Equal(t, Win, value)
	}
}

func TestFindMoveBlocksOpponentWin(t *testing.T) {
	// Red threatens to complete row 1 at (1,4); (1,0) is already
	// blocked. With depth 2 or more, black must take (1,4).
	var b game.Board
	place(&b, game.Red, game.Coord{Row: 1, Col: 1}, game.Coord{Row: 1, Col: 2}, game.Coord{Row: 1, Col: 3})
	place(&b, game.Black, game.Coord{Row: 1, Col: 0}, game.Coord{Row: 3, Col: 0}, game.Coord{Row: 3, Col: 2})

	m := NewMinimax(game.Black, WithDepth(2))
	move, value, ok := m.FindMove(b)

	require.True(t, ok)
	require.Equal(t, game.Move{{Row: 1, Col: 4}}, move)
	require.Greater(t, value, Loss, "the block avoids the forced loss")
}

func TestFindMoveDepthFrontierUsesHeuristic(t *testing.T) {
	// At depth 1 on an empty board every drop scores the same heuristic
	// value, so the first successor in generation order wins the tie.
	var b game.Board
	m := NewMinimax(game.Black, WithDepth(1))

	move, value, ok := m.FindMove(b)

	require.True(t, ok)
	require.Equal(t, game.Move{{Row: 0, Col: 0}}, move)
	require.Equal(t, 0.25, value, "single uncontested piece scores 1/4")
}

func TestFindMoveDeterministic(t *testing.T) {
	var b game.Board
	place(&b, game.Black, game.Coord{Row: 2, Col: 2})
	place(&b, game.Red, game.Coord{Row: 0, Col: 0})

	m := NewMinimax(game.Black, WithDepth(3))
	first, firstValue, ok := m.FindMove(b)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		move, value, ok := m.FindMove(b)
		require.True(t, ok)
		require.Equal(t, first, move, "repeated searches must pick the same move")
		require.Equal(t, firstValue, value)
	}
}

func TestFindMoveTerminalRoot(t *testing.T) {
	var b game.Board
	place(&b, game.Red,
		game.Coord{Row: 0, Col: 0}, game.Coord{Row: 0, Col: 1},
		game.Coord{Row: 1, Col: 0}, game.Coord{Row: 1, Col: 1})

	m := NewMinimax(game.Black)
	move, value, ok := m.FindMove(b)

	require.False(t, ok, "a finished game has no move to offer")
	require.Nil(t, move)
	require.Equal(t, Loss, value)
}

func TestFindMoveNoSuccessors(t *testing.T) {
	// A fully occupied, winnerless board has no relocation for either
	// side. The searcher reports no move rather than failing.
	rows := [game.Size]string{"brbrb", "brbrb", "rbrbr", "brbrb", "brbrb"}
	var b game.Board
	for r, row := range rows {
		for c, ch := range row {
			piece := game.Black
			if ch == 'r' {
				piece = game.Red
			}
			b.Set(r, c, piece)
		}
	}
	require.Equal(t, game.Empty, game.Winner(&b))

	m := NewMinimax(game.Black)
	move, _, ok := m.FindMove(b)

	require.False(t, ok)
	require.Nil(t, move)
}

func TestFindMoveCustomEvaluation(t *testing.T) {
	// A constant evaluator makes every frontier leaf equal, so the first
	// successor wins at every level.
	flat := func(b *game.Board, piece game.Cell) float64 { return 0 }

	var b game.Board
	m := NewMinimax(game.Black, WithDepth(2), WithEvaluationFn(flat))

	move, value, ok := m.FindMove(b)
	require.True(t, ok)
	require.Equal(t, game.Move{{Row: 0, Col: 0}}, move)
	require.Zero(t, value)
}

func TestFindMoveCollectsMetrics(t *testing.T) {
	var b game.Board
	m := NewMinimax(game.Black, WithDepth(2), WithMetrics())
	require.Equal(t, 2, m.Depth())

	_, _, ok := m.FindMove(b)
	require.True(t, ok)

	metric := m.Metrics()
	require.Equal(t, 2, metric.Depth)
	require.Greater(t, metric.Nodes, 25, "root plus at least one full expansion")
	require.Greater(t, metric.Leaves, 0)
	require.Zero(t, metric.Terminals, "nothing terminal within two plies of an empty board")
}
