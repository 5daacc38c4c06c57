package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"teeko/experiments"
	"teeko/game"
	"teeko/player"
)

func main() {
	configPath := flag.String("config", "teeko.yaml", "path to the YAML config file")
	depth := flag.Int("depth", 0, "search depth override")
	seed := flag.Uint64("seed", 0, "RNG seed override (0 draws a random seed)")
	selfplay := flag.Bool("selfplay", false, "run depth matchup experiments instead of an interactive game")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configPath != "teeko.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}

	setupLogging(cfg.LogLevel)

	if *selfplay {
		if err := experiments.RunDepthMatchups([]int{1, 2, 3}); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	playInteractive(cfg)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// playInteractive runs a human-vs-agent game on the terminal. Black always
// moves first; the agent's colour is drawn at construction.
func playInteractive(cfg Config) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to Teeko!")
	for {
		fmt.Print("Would you like to see the instructions? (yes/no): ")
		if !scanner.Scan() {
			return
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer == "y" || answer == "yes" {
			fmt.Print(instructions + "\n")
			break
		}
		if answer == "n" || answer == "no" {
			break
		}
		fmt.Println("Invalid input. Please enter 'yes' or 'no'.")
	}

	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	agent := player.New(
		player.WithDepth(cfg.Depth),
		player.WithSeed(cfg.Seed),
		player.WithSearchMetrics(),
	)
	log.Debug().Uint64("seed", cfg.Seed).Int("depth", cfg.Depth).
		Stringer("agent_piece", agent.Piece()).Msg("agent ready")

	fmt.Printf("\nYou will be playing as '%s'. The AI is '%s'.\n",
		agent.OpponentPiece(), agent.Piece())

	toMove := game.Black
	for agent.TerminalStatus() == player.NoWinner {
		board := agent.Board()
		fmt.Println(renderBoard(board))

		if toMove == agent.Piece() {
			fmt.Printf("AI's turn (%s)...\n", agent.Piece())
			start := time.Now()
			move, ok := agent.ChooseMove()
			elapsed := time.Since(start)
			if !ok {
				fmt.Println("AI cannot make a move. It might be a draw!")
				break
			}
			agent.CommitMove(move, agent.Piece())
			fmt.Printf("AI played %s\n", describeMove(move))
			fmt.Printf("(Thinking time: %.2fs)\n", elapsed.Seconds())
			metric := agent.SearchMetrics()
			log.Debug().Int("nodes", metric.Nodes).Int("leaves", metric.Leaves).
				Int("terminals", metric.Terminals).Dur("duration", metric.Duration).
				Msg("search stats")
		} else {
			fmt.Printf("Your turn (%s).\n", agent.OpponentPiece())
			for {
				move, err := readHumanMove(scanner, board.Phase())
				if errors.Is(err, errInputClosed) {
					return
				}
				if err != nil {
					fmt.Printf("Error: %v. Please try again.\n", err)
					continue
				}
				if err := agent.SubmitOpponentMove(move); err != nil {
					fmt.Printf("Error: %v. Please try again.\n", err)
					continue
				}
				break
			}
		}

		toMove = game.Opponent(toMove)
	}

	fmt.Println(renderBoard(agent.Board()))
	switch agent.TerminalStatus() {
	case player.AgentWins:
		fmt.Println("AI wins! Game over.")
	case player.OpponentWins:
		fmt.Println("Congratulations, you win! Game over.")
	default:
		fmt.Println("It's a draw! Game over.")
	}
}
