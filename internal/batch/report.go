package batch

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type runReport struct {
	RunID      string   `json:"run_id"`
	FinishedAt string   `json:"finished_at"`
	Results    []Result `json:"results"`
}

// WriteRunReport persists the batch outcome next to the charts:
// .lastrun.success.json for items that produced a chart and
// .lastrun.failed.json for the rest. Both carry the same run id.
func WriteRunReport(dir string, results []Result) error {
	if len(results) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	runID := uuid.NewString()
	finished := time.Now().UTC().Format(time.RFC3339)

	var ok, failed []Result
	for _, r := range results {
		if r.Ok() {
			ok = append(ok, r)
		} else {
			failed = append(failed, r)
		}
	}

	if len(ok) > 0 {
		if err := writeReportFile(filepath.Join(dir, ".lastrun.success.json"), runReport{RunID: runID, FinishedAt: finished, Results: ok}); err != nil {
			return err
		}
		slog.Info("report wrote success", "run_id", runID, "items", len(ok))
	}
	if len(failed) > 0 {
		if err := writeReportFile(filepath.Join(dir, ".lastrun.failed.json"), runReport{RunID: runID, FinishedAt: finished, Results: failed}); err != nil {
			return err
		}
		slog.Info("report wrote failed", "run_id", runID, "items", len(failed))
	}
	return nil
}

func writeReportFile(path string, rep runReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
