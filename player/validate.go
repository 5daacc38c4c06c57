package player

import (
	"errors"
	"fmt"

	"teeko/game"
)

// Validation failures for opponent-supplied moves. All are non-fatal: the
// caller reports them and the board stays untouched.
var (
	ErrMalformedMove       = errors.New("move must have one or two coordinates")
	ErrOutOfBounds         = errors.New("coordinate is outside the board")
	ErrDestinationOccupied = errors.New("destination is already occupied")
	ErrSourceNotOwned      = errors.New("no opponent piece at the source")
	ErrNonAdjacentMove     = errors.New("can only move to an adjacent space")
)

// validate checks an opponent move against the board, in a fixed order:
// shape, destination bounds, destination emptiness, then for relocations
// source bounds, source ownership and king-move adjacency. The first
// failing check decides the error.
func validate(b *game.Board, move game.Move, opponent game.Cell) error {
	if len(move) < 1 || len(move) > 2 {
		return fmt.Errorf("%w: got %d", ErrMalformedMove, len(move))
	}

	to := move.To()
	if !game.InBounds(to.Row, to.Col) {
		return fmt.Errorf("%w: destination (%d,%d)", ErrOutOfBounds, to.Row, to.Col)
	}
	if b.At(to.Row, to.Col) != game.Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrDestinationOccupied, to.Row, to.Col)
	}

	if from, ok := move.From(); ok {
		if !game.InBounds(from.Row, from.Col) {
			return fmt.Errorf("%w: source (%d,%d)", ErrOutOfBounds, from.Row, from.Col)
		}
		if b.At(from.Row, from.Col) != opponent {
			return fmt.Errorf("%w: (%d,%d)", ErrSourceNotOwned, from.Row, from.Col)
		}
		if abs(from.Row-to.Row) > 1 || abs(from.Col-to.Col) > 1 {
			return fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrNonAdjacentMove,
				from.Row, from.Col, to.Row, to.Col)
		}
	}

	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
