package searcher

import (
	"math"

	"teeko/game"
)

// Terminal values seen by the search. A win for the searching piece scores
// Win regardless of the depth it is found at, which is what lets an
// immediate win override any deeper heuristic value.
const (
	Win  = 1.0
	Loss = -1.0
)

// DefaultDepth is the search horizon used when no option overrides it.
const DefaultDepth = 3

type Option func(m *Minimax)

// WithDepth sets the fixed search depth.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithEvaluationFn replaces the static evaluation used at the depth
// frontier.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithMetrics enables per-search metrics collection.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

// Minimax is a fixed-depth, full-width adversarial search for one side of a
// Teeko game. It never mutates the board it is given; every node works on
// an independent copy produced by the successor generator.
//
// The leaf evaluation is always taken from the searching piece's
// perspective. The max/min alternation supplies the adversarial inversion,
// so the evaluator's sign convention stays fixed at the frontier.
type Minimax struct {
	piece    game.Cell
	depth    int
	evaluate game.Evaluate
	metrics  Collector
}

// NewMinimax returns a searcher playing the given piece.
func NewMinimax(piece game.Cell, options ...Option) *Minimax {
	m := &Minimax{
		piece:    piece,
		depth:    DefaultDepth,
		evaluate: game.PatternAdvantage,
		metrics:  NewNoopCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Depth returns the configured search horizon.
func (m *Minimax) Depth() int {
	return m.depth
}

// Metrics returns the metrics of the most recent FindMove call.
func (m *Minimax) Metrics() SearchMetric {
	return m.metrics.Complete()
}

// FindMove searches from the given position and returns the best move for
// the searching piece together with its minimax value. ok is false when no
// legal move exists, the degenerate blocked condition the caller must treat
// as a draw or loss rather than an error.
func (m *Minimax) FindMove(b game.Board) (move game.Move, value float64, ok bool) {
	m.metrics.Start(m.depth)
	value, move = m.search(b, 0, true)
	return move, value, move != nil
}

// search returns the value of the node and the move achieving it (nil at
// frontier and terminal nodes). Ties keep the first successor in generation
// order: the comparisons are strict, so a later equal value never replaces
// the incumbent, which makes move choice deterministic.
func (m *Minimax) search(b game.Board, depth int, maximizing bool) (float64, game.Move) {
	m.metrics.AddNode()

	if winner := game.Winner(&b); winner != game.Empty {
		m.metrics.AddTerminal()
		if winner == m.piece {
			return Win, nil
		}
		return Loss, nil
	}

	if depth == m.depth {
		m.metrics.AddLeaf()
		return m.evaluate(&b, m.piece), nil
	}

	piece := m.piece
	if !maximizing {
		piece = game.Opponent(m.piece)
	}
	succs := game.Successors(b, piece)

	// A side with no successors below the root leaves the infinity
	// sentinel in place, so any sibling with a real score wins.
	if maximizing {
		best := math.Inf(-1)
		var bestMove game.Move
		for _, succ := range succs {
			value, _ := m.search(succ.Board, depth+1, false)
			if value > best {
				best = value
				bestMove = succ.Move
			}
		}
		return best, bestMove
	}

	worst := math.Inf(1)
	var worstMove game.Move
	for _, succ := range succs {
		value, _ := m.search(succ.Board, depth+1, true)
		if value < worst {
			worst = value
			worstMove = succ.Move
		}
	}
	return worst, worstMove
}
