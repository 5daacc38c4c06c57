package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"teeko/game"
)

var errInputClosed = errors.New("input closed")

const instructions = `
Welcome to Teeko!

RULES:
1. The game is played on a 5x5 board.
2. Each player has four pieces ('b' for black, 'r' for red).
3. The game has two phases: Drop Phase and Move Phase.

DROP PHASE:
- Players take turns placing one of their pieces on any empty square.
- This continues until all 8 pieces are on the board.

MOVE PHASE:
- After the Drop Phase, players take turns moving one of their pieces to an
  adjacent empty square (horizontally, vertically, or diagonally).

HOW TO WIN:
- Get four of your pieces in a row (horizontally, vertically, or diagonally).
- Get four of your pieces in a 2x2 square.

HOW TO ENTER MOVES:
- Use column-row format (e.g., 'A0', 'C4'). The input is not case-sensitive.
- During the Move Phase, you will be prompted for a 'from' and 'to' location.
`

// renderBoard formats the board with lettered columns and numbered rows.
func renderBoard(b game.Board) string {
	var sb strings.Builder
	sb.WriteString("    A   B   C   D   E\n")
	sb.WriteString("  +---+---+---+---+---+\n")
	for r := 0; r < game.Size; r++ {
		fmt.Fprintf(&sb, "%d |", r)
		for c := 0; c < game.Size; c++ {
			fmt.Fprintf(&sb, " %s |", b.At(r, c))
		}
		sb.WriteString("\n  +---+---+---+---+---+\n")
	}
	return sb.String()
}

// squareName formats a coordinate in column-row notation, e.g. B3.
func squareName(c game.Coord) string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Col), c.Row)
}

// parseSquare parses a column-row square like "B3", case-insensitively.
func parseSquare(s string) (game.Coord, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'A' || s[0] > 'E' || s[1] < '0' || s[1] > '4' {
		return game.Coord{}, fmt.Errorf("invalid square %q: use column-row format like B3", s)
	}
	return game.Coord{Row: int(s[1] - '0'), Col: int(s[0] - 'A')}, nil
}

// readHumanMove prompts until a well-formed move is entered. Legality
// beyond the square format is left to the agent's validator, which
// re-prompts through the caller.
func readHumanMove(scanner *bufio.Scanner, phase game.Phase) (game.Move, error) {
	if phase == game.DropPhase {
		fmt.Print("Enter your move (e.g., B3): ")
		if !scanner.Scan() {
			return nil, errInputClosed
		}
		to, err := parseSquare(scanner.Text())
		if err != nil {
			return nil, err
		}
		return game.Move{to}, nil
	}

	fmt.Print("Move piece from (e.g., B3): ")
	if !scanner.Scan() {
		return nil, errInputClosed
	}
	from, err := parseSquare(scanner.Text())
	if err != nil {
		return nil, err
	}

	fmt.Print("Move piece to (e.g., C4): ")
	if !scanner.Scan() {
		return nil, errInputClosed
	}
	to, err := parseSquare(scanner.Text())
	if err != nil {
		return nil, err
	}
	return game.Move{to, from}, nil
}

// describeMove formats a played move for the transcript.
func describeMove(m game.Move) string {
	if from, ok := m.From(); ok {
		return fmt.Sprintf("from %s to %s", squareName(from), squareName(m.To()))
	}
	return fmt.Sprintf("at %s", squareName(m.To()))
}
