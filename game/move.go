package game

// Coord addresses a board square by (row, column), both in [0, Size).
type Coord struct {
	Row int
	Col int
}

// Move describes a drop or a relocation. The first coordinate is always the
// destination; a second coordinate, present only for relocations, is the
// source.
type Move []Coord

// To returns the destination square.
func (m Move) To() Coord {
	return m[0]
}

// From returns the source square of a relocation.
func (m Move) From() (Coord, bool) {
	if len(m) < 2 {
		return Coord{}, false
	}
	return m[1], true
}

// IsDrop reports whether the move places a new piece rather than relocating
// an existing one.
func (m Move) IsDrop() bool {
	return len(m) == 1
}

// Successor pairs a resulting board with the move that produced it.
type Successor struct {
	Board Board
	Move  Move
}

// neighborOffsets is the fixed king-move expansion order. Successor ordering
// (row-major over cells, then this offset order) is part of the searcher's
// tie-break determinism.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Successors enumerates every legal successor board for the given piece, in
// a fixed order. In the drop phase each empty cell yields a drop; in the
// move phase each of the piece's squares yields one relocation per empty
// king-move neighbor. An empty result in the move phase means the side is
// fully blocked and must be treated as a no-move condition, not an error.
func Successors(b Board, piece Cell) []Successor {
	if b.Phase() == DropPhase {
		return dropSuccessors(b, piece)
	}
	return relocationSuccessors(b, piece)
}

func dropSuccessors(b Board, piece Cell) []Successor {
	var succs []Successor
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				continue
			}
			next := b.Copy()
			next.Set(r, c, piece)
			succs = append(succs, Successor{
				Board: next,
				Move:  Move{{Row: r, Col: c}},
			})
		}
	}
	return succs
}

func relocationSuccessors(b Board, piece Cell) []Successor {
	var succs []Successor
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != piece {
				continue
			}
			for _, off := range neighborOffsets {
				nr, nc := r+off[0], c+off[1]
				if !InBounds(nr, nc) || b[nr][nc] != Empty {
					continue
				}
				next := b.Copy()
				next.Set(r, c, Empty)
				next.Set(nr, nc, piece)
				succs = append(succs, Successor{
					Board: next,
					Move:  Move{{Row: nr, Col: nc}, {Row: r, Col: c}},
				})
			}
		}
	}
	return succs
}

// Apply writes the move for the given piece onto the board, clearing the
// source first for relocations. It performs no legality checking; callers
// validate externally supplied moves beforehand.
func Apply(b *Board, m Move, piece Cell) {
	if from, ok := m.From(); ok {
		b.Set(from.Row, from.Col, Empty)
	}
	to := m.To()
	b.Set(to.Row, to.Col, piece)
}
