package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"stratego/game"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriterCreatesTimestampedRunDir(t *testing.T) {
	base := t.TempDir()
	w, err := NewWriter(base, "random-vs-heuristic")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(base, "random-vs-heuristic"), filepath.Dir(w.Dir()))
	info, err := os.Stat(w.Dir())
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestWriterGameRecordsRoundTrip(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "run")
	require.NoError(t, err)

	records := []GameRecord{
		{
			ID: uuid.New(), Agent1: "random", Agent2: "heuristic", BoardSize: 6,
			Winner: game.Player2.String(), Turns: 57, InvalidMoves1: 2,
			FlagCaptured: true, Reason: game.EndFlagCaptured.String(),
		},
		{
			ID: uuid.New(), Agent1: "random", Agent2: "heuristic", BoardSize: 6,
			Winner: game.NoPlayer.String(), Turns: 200, Reason: game.EndTurnLimit.String(),
		},
	}
	require.NoError(t, w.WriteGameRecords(records))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 3, "header plus one row per game")
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, records[0].ID.String(), rows[1][0])
	require.Equal(t, "57", rows[1][5])
	require.Equal(t, "true", rows[1][9])
	require.Equal(t, game.EndTurnLimit.String(), rows[2][10])
}

func TestWriterSummaryHasOneRowPerMetric(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "run")
	require.NoError(t, err)

	require.NoError(t, w.WriteSummary(Summary{Games: 10, Wins1: 6, Wins2: 3, Draws: 1, WinRate1: 0.6}))

	rows := readCSV(t, filepath.Join(w.Dir(), "summary.csv"))
	require.Equal(t, []string{"metric", "value"}, rows[0])

	values := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] {
		values[row[0]] = row[1]
	}
	require.Equal(t, "10", values["games"])
	require.Equal(t, "6", values["wins_p1"])
	require.Equal(t, "0.6000", values["win_rate_p1"])
}
