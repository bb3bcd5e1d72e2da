package harvest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/riftstats/predictor-api/internal/features"
)

// datasetWriter streams the two per-tier CSV outputs of a harvest run. Rows
// are flushed on Close; column order is fixed by the feature key tables.
type datasetWriter struct {
	avgFile   *os.File
	modelFile *os.File
	avg       *csv.Writer
	model     *csv.Writer
	modelCols []string
}

func newDatasetWriter(avgPath, modelPath string) (*datasetWriter, error) {
	avgFile, err := os.Create(avgPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", avgPath, err)
	}
	modelFile, err := os.Create(modelPath)
	if err != nil {
		avgFile.Close()
		return nil, fmt.Errorf("create %s: %w", modelPath, err)
	}

	w := &datasetWriter{
		avgFile:   avgFile,
		modelFile: modelFile,
		avg:       csv.NewWriter(avgFile),
		model:     csv.NewWriter(modelFile),
		modelCols: features.DiffColumns(),
	}

	avgHeader := append([]string{"rank_context", "match_id", "team_id", "role", "win"}, features.DiffKeys...)
	if err := w.avg.Write(avgHeader); err != nil {
		w.Close()
		return nil, fmt.Errorf("write averages header: %w", err)
	}
	modelHeader := append([]string{"rank_context", "match_id", "blue_win"}, w.modelCols...)
	if err := w.model.Write(modelHeader); err != nil {
		w.Close()
		return nil, fmt.Errorf("write model header: %w", err)
	}
	return w, nil
}

func (w *datasetWriter) WriteAverageRows(rows []features.AverageRow) error {
	for i := range rows {
		r := &rows[i]
		rec := make([]string, 0, 5+len(features.DiffKeys))
		rec = append(rec,
			strconv.Itoa(r.RankContext),
			r.MatchID,
			strconv.Itoa(r.TeamID),
			r.Role,
			strconv.Itoa(r.Win),
		)
		for _, key := range features.DiffKeys {
			rec = append(rec, formatMetric(r.Metrics[key]))
		}
		if err := w.avg.Write(rec); err != nil {
			return fmt.Errorf("write averages row: %w", err)
		}
	}
	return nil
}

func (w *datasetWriter) WriteModelRow(row features.ModelRow) error {
	rec := make([]string, 0, 3+len(w.modelCols))
	rec = append(rec,
		strconv.Itoa(row.RankContext),
		row.MatchID,
		strconv.Itoa(row.BlueWin),
	)
	for _, col := range w.modelCols {
		rec = append(rec, formatMetric(row.Diffs[col]))
	}
	if err := w.model.Write(rec); err != nil {
		return fmt.Errorf("write model row: %w", err)
	}
	return nil
}

func (w *datasetWriter) Close() error {
	w.avg.Flush()
	w.model.Flush()
	err := w.avg.Error()
	if e := w.model.Error(); err == nil {
		err = e
	}
	if e := w.avgFile.Close(); err == nil {
		err = e
	}
	if e := w.modelFile.Close(); err == nil {
		err = e
	}
	return err
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
