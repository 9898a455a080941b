// Package evallog persists evaluation runs to disk: one directory per run
// holding the scored records and their summary.
package evallog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"evalvault/pkg/aggregate"
	"evalvault/pkg/core"
	"evalvault/pkg/reporter"
)

const (
	recordsFile     = "records.jsonl"
	summaryJSONFile = "summary.json"
	summaryMDFile   = "summary.md"
)

// RunLog is one completed evaluation run.
type RunLog struct {
	RunID     string            `json:"run_id"`
	CreatedAt time.Time         `json:"created_at"`
	Records   []core.Record     `json:"records"`
	Summary   aggregate.Summary `json:"summary"`
}

// NewRunLog builds a run log, assigning a fresh run id when runID is empty.
func NewRunLog(runID string, records []core.Record, summary aggregate.Summary) RunLog {
	if runID == "" {
		runID = uuid.NewString()
	}
	return RunLog{
		RunID:     runID,
		CreatedAt: time.Now().UTC(),
		Records:   records,
		Summary:   summary,
	}
}

// WriteRun writes the run under dir/<run_id>/: records.jsonl, summary.json,
// and summary.md. Each file lands atomically. Returns the run directory.
func WriteRun(dir string, log RunLog) (string, error) {
	if dir == "" {
		return "", errors.New("evallog: dir is required")
	}
	if log.RunID == "" {
		return "", errors.New("evallog: run id is required")
	}

	runDir := filepath.Join(dir, log.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	if err := writeAtomic(runDir, recordsFile, func(f *os.File) error {
		encoder := json.NewEncoder(f)
		for _, rec := range log.Records {
			if err := encoder.Encode(rec); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return "", err
	}

	if err := writeAtomic(runDir, summaryJSONFile, func(f *os.File) error {
		encoder := json.NewEncoder(f)
		encoder.SetIndent("", "  ")
		return encoder.Encode(log)
	}); err != nil {
		return "", err
	}

	if err := writeAtomic(runDir, summaryMDFile, func(f *os.File) error {
		md := reporter.MarkdownReporter{
			Writer: f,
			Title:  "Run Summary — " + log.RunID,
		}
		return md.Report(log.Summary)
	}); err != nil {
		return "", err
	}

	return runDir, nil
}

// ReadRecords reads a records.jsonl written by WriteRun.
func ReadRecords(path string) ([]core.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []core.Record
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var rec core.Record
		if err := decoder.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadRun reads a run's summary.json back.
func ReadRun(runDir string) (RunLog, error) {
	f, err := os.Open(filepath.Join(runDir, summaryJSONFile))
	if err != nil {
		return RunLog{}, err
	}
	defer f.Close()

	var log RunLog
	if err := json.NewDecoder(f).Decode(&log); err != nil {
		return RunLog{}, err
	}
	return log, nil
}

func writeAtomic(dir, name string, write func(*os.File) error) error {
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(f.Name())
		return err
	}
	return nil
}
