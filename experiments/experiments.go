// Package experiments runs self-play matchups between agents at different
// search depths and stores the results as CSV records.
package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"teeko/engine"
	"teeko/experiments/metrics"
	"teeko/game"
	"teeko/player"
)

// NumGames is the number of games played per matchup.
const NumGames = 10

// RunDepthMatchups plays every pairing of the given depths against each
// other and writes agent, game and move records.
func RunDepthMatchups(depths []int) error {
	var configs []metrics.AgentConfig
	for i, depth := range depths {
		configs = append(configs, metrics.AgentConfig{
			ID:    i + 1,
			Depth: depth,
			Seed:  uint64(i + 1),
		})
	}

	var matchups [][2]metrics.AgentConfig
	for _, c1 := range configs {
		for _, c2 := range configs {
			matchups = append(matchups, [2]metrics.AgentConfig{c1, c2})
		}
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	log.Info().Msg("starting depth matchup experiment...")
	gameID := 0
	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d between agent %d (depth %d) and agent %d (depth %d)...",
			mi+1, len(matchups), matchup[0].ID, matchup[0].Depth, matchup[1].ID, matchup[1].Depth)
		for i := 0; i < NumGames; i++ {
			gameID++
			record, moves, err := runGame(gameID, matchup[0], matchup[1])
			if err != nil {
				return err
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
			log.Info().Msgf("completed game %d of %d with winner: %s",
				i+1, NumGames, record.Winner)
		}
	}
	log.Info().Msg("completed depth matchup experiment")

	return store(configs, gameRecords, moveRecords)
}

func runGame(id int, black, red metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	blackAgent := player.New(
		player.WithPiece(game.Black),
		player.WithDepth(black.Depth),
		player.WithSeed(black.Seed+uint64(id)),
		player.WithSearchMetrics(),
	)
	redAgent := player.New(
		player.WithPiece(game.Red),
		player.WithDepth(red.Depth),
		player.WithSeed(red.Seed+uint64(id)),
		player.WithSearchMetrics(),
	)

	e, err := engine.Local(blackAgent, redAgent)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	start := time.Now()
	result, engineMoves := e.Run()

	winner := result.Winner.String()
	if result.Draw {
		winner = "draw"
	}
	record := metrics.GameRecord{
		ID:       id,
		Black:    black.ID,
		Red:      red.ID,
		Winner:   winner,
		Draw:     result.Draw,
		Turns:    result.Turns,
		Duration: time.Since(start),
	}

	moves := make([]metrics.MoveRecord, len(engineMoves))
	for i, m := range engineMoves {
		moves[i] = metrics.MoveRecord{Game: id, MoveRecord: m}
	}
	return record, moves, nil
}

func store(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter("depth_matchups")
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}
