package player

import (
	"golang.org/x/exp/rand"

	"teeko/game"
	"teeko/searcher"
)

// Outcome is the terminal status of the authoritative board, seen from the
// agent's side.
type Outcome int

const (
	NoWinner Outcome = iota
	AgentWins
	OpponentWins
)

func (o Outcome) String() string {
	switch o {
	case AgentWins:
		return "agent wins"
	case OpponentWins:
		return "opponent wins"
	default:
		return "no winner"
	}
}

type Option func(p *Player)

// WithPiece fixes the agent's piece instead of drawing it at random.
func WithPiece(piece game.Cell) Option {
	return func(p *Player) {
		if piece == game.Black || piece == game.Red {
			p.piece = piece
		}
	}
}

// WithSeed seeds the RNG used for the piece draw and the fallback move, for
// reproducible games.
func WithSeed(seed uint64) Option {
	return func(p *Player) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDepth sets the search depth.
func WithDepth(depth int) Option {
	return func(p *Player) {
		if depth > 0 {
			p.depth = depth
		}
	}
}

// WithSearchMetrics enables metrics collection on the underlying search.
func WithSearchMetrics() Option {
	return func(p *Player) {
		p.collectMetrics = true
	}
}

// Player is a Teeko-playing agent. It owns the authoritative board for its
// game, mutated only through CommitMove and SubmitOpponentMove; the search
// only ever sees copies. The agent's piece is assigned once at construction
// and fixed for its lifetime.
type Player struct {
	board          game.Board
	piece          game.Cell
	opponent       game.Cell
	depth          int
	collectMetrics bool
	search         *searcher.Minimax
	rng            *rand.Rand
}

// New creates an agent over an empty board. Unless WithPiece is given, the
// agent draws black or red at random.
func New(options ...Option) *Player {
	p := &Player{depth: searcher.DefaultDepth}
	for _, option := range options {
		option(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	if p.piece == game.Empty {
		if p.rng.Intn(2) == 0 {
			p.piece = game.Black
		} else {
			p.piece = game.Red
		}
	}
	p.opponent = game.Opponent(p.piece)

	searchOptions := []searcher.Option{searcher.WithDepth(p.depth)}
	if p.collectMetrics {
		searchOptions = append(searchOptions, searcher.WithMetrics())
	}
	p.search = searcher.NewMinimax(p.piece, searchOptions...)
	return p
}

// Piece returns the agent's piece.
func (p *Player) Piece() game.Cell {
	return p.piece
}

// OpponentPiece returns the opponent's piece.
func (p *Player) OpponentPiece() game.Cell {
	return p.opponent
}

// Board returns a copy of the authoritative board for rendering.
func (p *Player) Board() game.Board {
	return p.board.Copy()
}

// SearchMetrics returns the metrics of the most recent search.
func (p *Player) SearchMetrics() searcher.SearchMetric {
	return p.search.Metrics()
}

// ChooseMove searches from the authoritative board and returns the agent's
// best move. If the search surfaces no move but legal successors exist, a
// uniformly random one is played instead. ok is false only when the agent
// has no legal move at all, which the caller treats as a draw or loss.
func (p *Player) ChooseMove() (move game.Move, ok bool) {
	move, _, ok = p.search.FindMove(p.board.Copy())
	if ok {
		return move, true
	}

	succs := game.Successors(p.board.Copy(), p.piece)
	if len(succs) == 0 {
		return nil, false
	}
	return succs[p.rng.Intn(len(succs))].Move, true
}

// CommitMove applies a move for the given piece to the authoritative board
// without legality checking. It is used for the agent's own search-produced
// moves and, by the validator, for already-validated opponent moves.
func (p *Player) CommitMove(move game.Move, piece game.Cell) {
	game.Apply(&p.board, move, piece)
}

// SubmitOpponentMove validates an opponent-supplied move against the
// authoritative board and applies it on success. On failure the board is
// left unmodified and the returned error wraps one of the Err* sentinels.
func (p *Player) SubmitOpponentMove(move game.Move) error {
	if err := validate(&p.board, move, p.opponent); err != nil {
		return err
	}
	p.CommitMove(move, p.opponent)
	return nil
}

// TerminalStatus reports whether either side has completed a winning
// pattern on the authoritative board.
func (p *Player) TerminalStatus() Outcome {
	switch game.Winner(&p.board) {
	case p.piece:
		return AgentWins
	case p.opponent:
		return OpponentWins
	default:
		return NoWinner
	}
}
