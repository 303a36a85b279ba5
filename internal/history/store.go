// Package history persists finished search/download runs to a local SQLite
// database so past results stay visible across app restarts.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // CGO-less SQLite driver

	"github.com/gsqget/gsq-downloader/internal/model"
)

// Run is one recorded search/download run.
type Run struct {
	ID                 string
	StartedAt          time.Time
	FinishedAt         time.Time
	Status             string
	Region             string
	Query              string
	DataType           string
	Preview            bool
	Precise            bool
	MaxDatasets        int
	DatasetsFound      int
	ResourcesAttempted int
	ResourcesSaved     int
	OutputDir          string
	LastError          string
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	status TEXT NOT NULL,
	region TEXT NOT NULL,
	query TEXT NOT NULL,
	data_type TEXT NOT NULL,
	preview INTEGER NOT NULL,
	precise INTEGER NOT NULL,
	max_datasets INTEGER NOT NULL,
	datasets_found INTEGER NOT NULL,
	resources_attempted INTEGER NOT NULL,
	resources_saved INTEGER NOT NULL,
	output_dir TEXT NOT NULL,
	last_error TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// New opens (and creates if needed) the history database at the given DSN,
// e.g. "file:history.db?cache=shared".
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordJob persists a finished job.
func (s *Store) RecordJob(ctx context.Context, job *model.SearchJob) error {
	run := runFromJob(job)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, status, region, query, data_type,
			preview, precise, max_datasets, datasets_found, resources_attempted,
			resources_saved, output_dir, last_error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.Format(time.RFC3339), run.FinishedAt.Format(time.RFC3339),
		run.Status, run.Region, run.Query, run.DataType,
		boolToInt(run.Preview), boolToInt(run.Precise), run.MaxDatasets,
		run.DatasetsFound, run.ResourcesAttempted, run.ResourcesSaved,
		run.OutputDir, run.LastError,
	)
	return err
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit < 1 {
		limit = 1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, status, region, query, data_type,
			preview, precise, max_datasets, datasets_found, resources_attempted,
			resources_saved, output_dir, last_error
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var run Run
		var startedAt, finishedAt string
		var preview, precise int
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Status, &run.Region,
			&run.Query, &run.DataType, &preview, &precise, &run.MaxDatasets,
			&run.DatasetsFound, &run.ResourcesAttempted, &run.ResourcesSaved,
			&run.OutputDir, &run.LastError); err != nil {
			return nil, err
		}
		run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		run.FinishedAt, _ = time.Parse(time.RFC3339, finishedAt)
		run.Preview = preview != 0
		run.Precise = precise != 0
		result = append(result, run)
	}
	return result, rows.Err()
}

// runFromJob flattens a finished job into a history row.
func runFromJob(job *model.SearchJob) Run {
	run := Run{
		ID:          job.ID,
		StartedAt:   job.StartedAt,
		FinishedAt:  job.FinishedAt,
		Status:      job.Status.String(),
		Region:      job.Config.RegionName,
		Query:       job.Query,
		DataType:    job.Config.DataTypeName,
		Preview:     job.Config.PreviewMode,
		Precise:     job.Config.PreciseFiltering,
		MaxDatasets: job.Config.MaxDatasets,
		OutputDir:   job.Config.OutputDir,
		LastError:   job.LastError,
	}

	if job.Results != nil {
		run.DatasetsFound = len(job.Results.Results)
	}
	if job.Report != nil {
		run.DatasetsFound = job.Report.DatasetsFound
		run.ResourcesAttempted = job.Report.ResourcesAttempted
		run.ResourcesSaved = job.Report.ResourcesSaved
	}
	return run
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
