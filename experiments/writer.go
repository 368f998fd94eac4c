package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Writer persists ladder results as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the output directory for one ladder run.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory the writer creates files in.
func (w *Writer) BaseDir() string { return w.baseDir }

// WriteGames writes one row per game.
func (w *Writer) WriteGames(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create games file")
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"id", "player_level", "ai_level", "player_first", "result", "finished", "half_moves", "duration_ms"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.PlayerLevel),
			strconv.Itoa(r.AILevel),
			strconv.FormatBool(r.PlayerFirst),
			r.Result.String(),
			strconv.FormatBool(r.Finished),
			strconv.Itoa(r.HalfMoves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write game %d", r.ID)
		}
	}
	return cw.Error()
}

// WriteSummaries writes one row per level pairing.
func (w *Writer) WriteSummaries(summaries []PairSummary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create summary file")
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"player_level", "ai_level", "games", "ai_win_rate", "draw_rate", "mean_half_moves", "stddev_half_moves", "mean_duration_ms"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for _, s := range summaries {
		row := []string{
			strconv.Itoa(s.PlayerLevel),
			strconv.Itoa(s.AILevel),
			strconv.Itoa(s.Games),
			strconv.FormatFloat(s.AIWinRate, 'f', 3, 64),
			strconv.FormatFloat(s.DrawRate, 'f', 3, 64),
			strconv.FormatFloat(s.MeanHalfMoves, 'f', 1, 64),
			strconv.FormatFloat(s.StddevHalfMoves, 'f', 1, 64),
			strconv.FormatFloat(s.MeanDurationMs, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write summary row")
		}
	}
	return cw.Error()
}
