package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"teeko/game"
	"teeko/player"
	"teeko/searcher"
)

// MaxTurns caps a game so a pair of agents shuffling pieces forever still
// terminates.
const MaxTurns = 200

// MoveRecord captures one played move for the experiment writers.
type MoveRecord struct {
	Turn   int
	Piece  game.Cell
	Move   game.Move
	Hash   game.BoardHash
	Search searcher.SearchMetric
}

// Result is the outcome of a finished local game.
type Result struct {
	Winner game.Cell // Empty on a draw or turn-cap stop
	Turns  int
	Draw   bool
}

// Engine runs a local agent-vs-agent game. Each agent owns its own
// authoritative board; the engine relays every played move to the other
// side through its validator, so the two boards stay in lockstep the same
// way a remote game would.
type Engine struct {
	agents [2]*player.Player // indexed by turn order: black first
}

// Local pairs two agents for a game. The black-playing agent moves first.
func Local(black, red *player.Player) (*Engine, error) {
	if black.Piece() != game.Black || red.Piece() != game.Red {
		return nil, fmt.Errorf("agents must play black and red, got %v and %v",
			black.Piece(), red.Piece())
	}
	return &Engine{agents: [2]*player.Player{black, red}}, nil
}

// Run plays the game to completion and returns the result with the per-move
// records.
func (e *Engine) Run() (Result, []MoveRecord) {
	var records []MoveRecord

	for turn := 1; turn <= MaxTurns; turn++ {
		mover := e.agents[(turn-1)%2]
		other := e.agents[turn%2]

		move, ok := mover.ChooseMove()
		if !ok {
			log.Info().Int("turn", turn).Stringer("piece", mover.Piece()).
				Msg("no legal move, game drawn")
			return Result{Turns: turn - 1, Draw: true}, records
		}

		mover.CommitMove(move, mover.Piece())
		if err := other.SubmitOpponentMove(move); err != nil {
			// The search only produces legal moves, so a rejection
			// here means the boards have diverged.
			log.Panic().Err(err).Int("turn", turn).
				Msgf("relayed move %v rejected", move)
		}

		board := mover.Board()
		records = append(records, MoveRecord{
			Turn:   turn,
			Piece:  mover.Piece(),
			Move:   move,
			Hash:   board.Hash(),
			Search: mover.SearchMetrics(),
		})
		log.Debug().Int("turn", turn).Stringer("piece", mover.Piece()).
			Msgf("played %v", move)

		if winner := game.Winner(&board); winner != game.Empty {
			log.Info().Int("turns", turn).Stringer("winner", winner).
				Msg("game over")
			return Result{Winner: winner, Turns: turn}, records
		}
	}

	log.Info().Int("turns", MaxTurns).Msg("turn cap reached with no winner")
	return Result{Turns: MaxTurns, Draw: true}, records
}
