package game

// Winner scans the board for a completed pattern and returns the owning
// piece, or Empty if neither side has won. Patterns are checked in a fixed
// order (horizontal, vertical, both diagonals, 2x2 box); the first match
// decides, which also keeps artificially constructed double-win boards from
// misbehaving.
func Winner(b *Board) Cell {
	// Horizontal runs of four.
	for r := 0; r < Size; r++ {
		for c := 0; c <= Size-4; c++ {
			p := b[r][c]
			if p != Empty && p == b[r][c+1] && p == b[r][c+2] && p == b[r][c+3] {
				return p
			}
		}
	}

	// Vertical runs of four.
	for c := 0; c < Size; c++ {
		for r := 0; r <= Size-4; r++ {
			p := b[r][c]
			if p != Empty && p == b[r+1][c] && p == b[r+2][c] && p == b[r+3][c] {
				return p
			}
		}
	}

	// Top-left to bottom-right diagonals.
	for r := 0; r <= Size-4; r++ {
		for c := 0; c <= Size-4; c++ {
			p := b[r][c]
			if p != Empty && p == b[r+1][c+1] && p == b[r+2][c+2] && p == b[r+3][c+3] {
				return p
			}
		}
	}

	// Top-right to bottom-left diagonals.
	for r := 0; r <= Size-4; r++ {
		for c := 3; c < Size; c++ {
			p := b[r][c]
			if p != Empty && p == b[r+1][c-1] && p == b[r+2][c-2] && p == b[r+3][c-3] {
				return p
			}
		}
	}

	// 2x2 boxes.
	for r := 0; r < Size-1; r++ {
		for c := 0; c < Size-1; c++ {
			p := b[r][c]
			if p != Empty && p == b[r+1][c] && p == b[r][c+1] && p == b[r+1][c+1] {
				return p
			}
		}
	}

	return Empty
}
