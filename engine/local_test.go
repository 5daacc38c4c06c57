package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"teeko/game"
	"teeko/player"
)

func TestLocalRequiresMatchingPieces(t *testing.T) {
	black := player.New(player.WithPiece(game.Black))
	red := player.New(player.WithPiece(game.Red))

	_, err := Local(red, black)
	require.Error(t, err, "agents passed in the wrong seats must be rejected")

	_, err = Local(black, black)
	require.Error(t, err)

	_, err = Local(black, red)
	require.NoError(t, err)
}

func TestRunPlaysACompleteGame(t *testing.T) {
	black := player.New(player.WithPiece(game.Black), player.WithDepth(1),
		player.WithSeed(1), player.WithSearchMetrics())
	red := player.New(player.WithPiece(game.Red), player.WithDepth(1),
		player.WithSeed(2), player.WithSearchMetrics())

	e, err := Local(black, red)
	require.NoError(t, err)

	result, records := e.Run()

	require.NotEmpty(t, records)
	require.LessOrEqual(t, result.Turns, MaxTurns)
	if !result.Draw {
		require.Contains(t, []game.Cell{game.Black, game.Red}, result.Winner)
	}

	// The relay protocol keeps both authoritative boards in lockstep.
	blackBoard := black.Board()
	redBoard := red.Board()
	require.Equal(t, blackBoard.Hash(), redBoard.Hash())

	// Records are sequential, alternate pieces, and carry search stats.
	for i, record := range records {
		require.Equal(t, i+1, record.Turn)
		if i%2 == 0 {
			require.Equal(t, game.Black, record.Piece)
		} else {
			require.Equal(t, game.Red, record.Piece)
		}
		require.NotEmpty(t, record.Move)
		require.Positive(t, record.Search.Nodes)
	}
}
