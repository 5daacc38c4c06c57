package game

// Evaluate is the signature of a static evaluation function. It scores a
// non-terminal board from the given piece's perspective, between -1 and 1,
// positive meaning that piece is better placed to win.
type Evaluate func(b *Board, piece Cell) float64

// PatternAdvantage scores a board by each side's single best partially built
// winning pattern. For every window of the five pattern families it counts
// that side's pieces in the window, treating any window containing an
// opposing piece as fully blocked (count zero). The score is
// (bestOwn - bestOpponent) / 4, so it stays within [-1, 1].
func PatternAdvantage(b *Board, piece Cell) float64 {
	own := bestPatternCount(b, piece)
	opp := bestPatternCount(b, Opponent(piece))
	return float64(own-opp) / float64(PiecesPerSide)
}

func bestPatternCount(b *Board, piece Cell) int {
	best := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c <= Size-4 {
				best = max(best, countWindow(b, r, c, 0, 1, piece))
			}
			if r <= Size-4 {
				best = max(best, countWindow(b, r, c, 1, 0, piece))
			}
			if r <= Size-4 && c <= Size-4 {
				best = max(best, countWindow(b, r, c, 1, 1, piece))
			}
			if r <= Size-4 && c >= 3 {
				best = max(best, countWindow(b, r, c, 1, -1, piece))
			}
			if r < Size-1 && c < Size-1 {
				best = max(best, countBox(b, r, c, piece))
			}
		}
	}
	return best
}

// countWindow counts the piece's cells in a line of four starting at (r, c)
// with step (dr, dc). A window holding any opposing piece counts zero.
func countWindow(b *Board, r, c, dr, dc int, piece Cell) int {
	count := 0
	for i := 0; i < 4; i++ {
		cell := b[r+i*dr][c+i*dc]
		switch {
		case cell == piece:
			count++
		case cell != Empty:
			return 0
		}
	}
	return count
}

// countBox is countWindow for the 2x2 box family.
func countBox(b *Board, r, c int, piece Cell) int {
	count := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cell := b[r+i][c+j]
			switch {
			case cell == piece:
				count++
			case cell != Empty:
				return 0
			}
		}
	}
	return count
}
