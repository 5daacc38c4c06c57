package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Size is the side length of the Teeko board.
const Size = 5

// PiecesPerSide is the number of pieces each player drops before the move
// phase begins.
const PiecesPerSide = 4

// Cell is the occupancy of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	Red
)

func (c Cell) String() string {
	switch c {
	case Black:
		return "b"
	case Red:
		return "r"
	default:
		return " "
	}
}

// Opponent returns the piece belonging to the other player.
func Opponent(c Cell) Cell {
	switch c {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

type Phase int

const (
	DropPhase Phase = iota
	MovePhase
)

func (p Phase) String() string {
	if p == DropPhase {
		return "drop"
	}
	return "move"
}

// Board is the 5x5 grid of cells. It has value semantics: assignment or
// passing by value yields an independent deep copy, which the searcher
// relies on when exploring hypothetical states.
type Board [Size][Size]Cell

// At returns the cell at (row, col). Callers pass in-range coordinates;
// externally supplied moves are range-checked by the player's validator.
func (b Board) At(row, col int) Cell {
	return b[row][col]
}

// Set writes a cell at (row, col).
func (b *Board) Set(row, col int, c Cell) {
	b[row][col] = c
}

// Count returns the number of cells holding the given value.
func (b *Board) Count(c Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	return b
}

// Phase derives the current phase from the piece count: drop while fewer
// than eight pieces are on the board, move afterwards. The phase is never
// stored separately so it cannot desynchronize from the board.
func (b *Board) Phase() Phase {
	if b.Count(Black)+b.Count(Red) < 2*PiecesPerSide {
		return DropPhase
	}
	return MovePhase
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// BoardHash identifies a board position.
type BoardHash uint64

// Hash returns an FNV-64a digest of the cell contents.
func (b *Board) Hash() BoardHash {
	hasher := fnv.New64a()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			binary.Write(hasher, binary.LittleEndian, int64(b[r][c]))
		}
	}
	return BoardHash(hasher.Sum64())
}
