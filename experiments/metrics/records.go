package metrics

import (
	"time"

	"teeko/engine"
)

// AgentConfig identifies one agent configuration in a matchup.
type AgentConfig struct {
	ID    int
	Depth int
	Seed  uint64
}

// GameRecord summarizes one finished game between two configs.
type GameRecord struct {
	ID       int
	Black    int // AgentConfig.ID
	Red      int // AgentConfig.ID
	Winner   string
	Draw     bool
	Turns    int
	Duration time.Duration
}

// MoveRecord ties an engine move record to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveRecord
}
