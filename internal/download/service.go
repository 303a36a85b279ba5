package download

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gsqget/gsq-downloader/internal/catalog"
	"github.com/gsqget/gsq-downloader/internal/geo"
	"github.com/gsqget/gsq-downloader/internal/gsq"
	"github.com/gsqget/gsq-downloader/internal/model"
)

// Service runs search/download jobs against the portal client.
type Service struct {
	jobs      map[string]*model.SearchJob
	cancels   map[string]context.CancelFunc
	jobsMutex sync.RWMutex

	searcher gsq.Searcher
	catalog  *catalog.Catalog
	bounds   geo.Bounds
	log      zerolog.Logger
	onUpdate func(*model.SearchJob) // callback for UI updates
}

var _ Runner = (*Service)(nil)

// NewService creates a new job service.
func NewService(searcher gsq.Searcher, cat *catalog.Catalog, bounds geo.Bounds, logger zerolog.Logger) *Service {
	return &Service{
		jobs:     make(map[string]*model.SearchJob),
		cancels:  make(map[string]context.CancelFunc),
		searcher: searcher,
		catalog:  cat,
		bounds:   bounds,
		log:      logger.With().Str("component", "job-service").Logger(),
	}
}

// SetUpdateCallback sets the callback function for job updates. The callback
// may run on a worker goroutine; the UI layer marshals it onto its own thread.
func (s *Service) SetUpdateCallback(callback func(*model.SearchJob)) {
	s.onUpdate = callback
}

// Start validates the configuration and launches a background job. Validation
// failures abort before any background work begins.
func (s *Service) Start(cfg model.SearchConfig) (*model.SearchJob, error) {
	polygon, err := geo.ParsePolygon(cfg.CoordinatesText, s.bounds)
	if err != nil {
		return nil, err
	}

	dataType, ok := s.catalog.DataTypeByName(cfg.DataTypeName)
	if !ok {
		return nil, fmt.Errorf("unknown data type: %s", cfg.DataTypeName)
	}

	format, ok := s.catalog.FileFormatByName(cfg.FormatName)
	if !ok {
		return nil, fmt.Errorf("unknown file format: %s", cfg.FormatName)
	}

	if cfg.MaxDatasets < 1 {
		return nil, fmt.Errorf("max datasets must be positive, got %d", cfg.MaxDatasets)
	}
	if !cfg.PreviewMode && cfg.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required for downloads")
	}

	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	for _, job := range s.jobs {
		if !job.Status.IsFinished() && job.Status != model.JobStatusPending {
			return nil, fmt.Errorf("another operation is already in progress")
		}
	}

	job := &model.SearchJob{
		ID:        uuid.NewString(),
		Config:    cfg,
		Query:     catalog.BuildQuery(dataType, cfg.SearchMode, cfg.CustomTerms),
		Status:    model.JobStatusPending,
		StartedAt: time.Now(),
	}
	s.jobs[job.ID] = job

	ctx, cancel := context.WithCancel(context.Background())
	s.cancels[job.ID] = cancel

	go s.runJob(ctx, job, polygon, catalog.BuildFilters(dataType), format.Formats)

	return job, nil
}

// Cancel requests cancellation of an active job. The collaborator call checks
// the context between requests, so the resource currently in flight may still
// finish writing.
func (s *Service) Cancel(id string) error {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job not found: %s", id)
	}
	if job.Status.IsFinished() {
		return fmt.Errorf("job is not active: %s", job.Status)
	}

	job.Status = model.JobStatusCancelling
	if cancel, ok := s.cancels[id]; ok {
		cancel()
	}

	s.log.Info().Str("job", id).Msg("cancellation requested")
	s.notifyUpdate(job)
	return nil
}

// GetJob returns a job by ID.
func (s *Service) GetJob(id string) (*model.SearchJob, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	job, exists := s.jobs[id]
	return job, exists
}

// ActiveJob returns the running job, if any.
func (s *Service) ActiveJob() (*model.SearchJob, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	for _, job := range s.jobs {
		if job.Status.IsActive() {
			return job, true
		}
	}
	return nil, false
}

// AllJobs returns all jobs, most recent first.
func (s *Service) AllJobs() []*model.SearchJob {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	jobs := make([]*model.SearchJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].StartedAt.After(jobs[j].StartedAt)
	})
	return jobs
}

// runJob executes the collaborator call on a worker goroutine.
func (s *Service) runJob(ctx context.Context, job *model.SearchJob, polygon model.Polygon,
	filters []string, formats []string) {

	defer s.releaseCancel(job.ID)

	cfg := job.Config

	s.jobsMutex.Lock()
	if cfg.PreviewMode {
		job.Status = model.JobStatusSearching
	} else {
		job.Status = model.JobStatusDownloading
	}
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	s.log.Info().Str("job", job.ID).Str("query", job.Query).Bool("preview", cfg.PreviewMode).
		Msg("job started")

	var results *model.ResultSet
	var report *model.DownloadReport
	var err error

	if cfg.PreviewMode {
		results, err = s.searcher.Search(ctx, polygon, job.Query, filters,
			cfg.MaxDatasets, cfg.PreciseFiltering)
	} else {
		report, err = s.searcher.SearchAndDownload(ctx, polygon, job.Query, filters,
			cfg.MaxDatasets, cfg.OutputDir, formats, cfg.PreciseFiltering)
	}

	s.jobsMutex.Lock()
	switch {
	case ctx.Err() != nil:
		job.Status = model.JobStatusCancelled
	case err != nil:
		job.Status = model.JobStatusError
		job.LastError = err.Error()
	default:
		job.Status = model.JobStatusCompleted
		job.Results = results
		job.Report = report
	}
	job.FinishedAt = time.Now()
	s.jobsMutex.Unlock()

	s.log.Info().Str("job", job.ID).Str("status", job.Status.String()).
		Str("elapsed", job.ElapsedString()).Msg("job finished")

	s.notifyUpdate(job)
}

// releaseCancel drops the cancel func once the job can no longer use it.
func (s *Service) releaseCancel(id string) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	if cancel, ok := s.cancels[id]; ok {
		cancel()
		delete(s.cancels, id)
	}
}

// notifyUpdate calls the update callback if set.
func (s *Service) notifyUpdate(job *model.SearchJob) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}
