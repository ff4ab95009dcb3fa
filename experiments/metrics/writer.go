package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores one benchmark run's CSV files in a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: dir}, nil
}

// Dir returns where this run's files land.
func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "agent1", "agent2", "board_size", "winner", "turns",
			"invalid_moves_p1", "invalid_moves_p2", "repetitions",
			"flag_captured", "game_end_reason", "start_time", "end_time"},
		len(records),
		func(i int) []string {
			r := records[i]
			return []string{
				r.ID.String(),
				r.Agent1,
				r.Agent2,
				strconv.Itoa(r.BoardSize),
				r.Winner,
				strconv.Itoa(r.Turns),
				strconv.Itoa(r.InvalidMoves1),
				strconv.Itoa(r.InvalidMoves2),
				strconv.Itoa(r.Repetitions),
				strconv.FormatBool(r.FlagCaptured),
				r.Reason,
				r.StartTime.Format(time.RFC3339),
				r.EndTime.Format(time.RFC3339),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeCSV("move_records.csv",
		[]string{"game", "turn", "player", "move", "outcome", "captured", "was_repeated"},
		len(records),
		func(i int) []string {
			r := records[i]
			return []string{
				r.Game.String(),
				strconv.Itoa(r.Turn),
				strconv.Itoa(r.Player),
				r.Move,
				r.Outcome,
				r.Captured,
				strconv.FormatBool(r.WasRepeated),
			}
		})
}

func (w *Writer) WriteSummary(s Summary) error {
	rows := [][]string{
		{"games", strconv.Itoa(s.Games)},
		{"wins_p1", strconv.Itoa(s.Wins1)},
		{"wins_p2", strconv.Itoa(s.Wins2)},
		{"draws", strconv.Itoa(s.Draws)},
		{"win_rate_p1", strconv.FormatFloat(s.WinRate1, 'f', 4, 64)},
		{"win_rate_p2", strconv.FormatFloat(s.WinRate2, 'f', 4, 64)},
		{"avg_game_length", strconv.FormatFloat(s.AvgTurns, 'f', 2, 64)},
		{"avg_invalid_moves_p1", strconv.FormatFloat(s.AvgInvalid1, 'f', 2, 64)},
		{"avg_invalid_moves_p2", strconv.FormatFloat(s.AvgInvalid2, 'f', 2, 64)},
		{"avg_repetitions", strconv.FormatFloat(s.AvgRepeats, 'f', 2, 64)},
		{"ended_by_flag", strconv.Itoa(s.EndedByFlag)},
		{"ended_by_no_moves", strconv.Itoa(s.EndedByNoMoves)},
		{"ended_by_invalid", strconv.Itoa(s.EndedByInvalid)},
		{"ended_by_repetition", strconv.Itoa(s.EndedByRepetition)},
		{"ended_by_turn_limit", strconv.Itoa(s.EndedByTurnLimit)},
	}
	return w.writeCSV("summary.csv", []string{"metric", "value"}, len(rows),
		func(i int) []string { return rows[i] })
}

func (w *Writer) writeCSV(name string, header []string, n int, row func(int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
