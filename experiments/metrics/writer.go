package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	return w.writeCSV("agent_configs.csv",
		[]string{"id", "depth", "seed"},
		len(configs), func(i int) []string {
			return []string{
				strconv.Itoa(configs[i].ID),
				strconv.Itoa(configs[i].Depth),
				strconv.FormatUint(configs[i].Seed, 10),
			}
		})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "black", "red", "winner", "draw", "turns", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.ID),
				strconv.Itoa(r.Black),
				strconv.Itoa(r.Red),
				r.Winner,
				strconv.FormatBool(r.Draw),
				strconv.Itoa(r.Turns),
				r.Duration.String(),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeCSV("move_records.csv",
		[]string{"game", "turn", "piece", "move", "board_hash", "nodes", "leaves", "terminals", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.Game),
				strconv.Itoa(r.Turn),
				r.Piece.String(),
				fmt.Sprintf("%v", r.Move),
				strconv.FormatUint(uint64(r.Hash), 10),
				strconv.Itoa(r.Search.Nodes),
				strconv.Itoa(r.Search.Leaves),
				strconv.Itoa(r.Search.Terminals),
				r.Search.Duration.String(),
			}
		})
}

func (w *Writer) writeCSV(name string, header []string, rows int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
