package download

import (
	"github.com/gsqget/gsq-downloader/internal/model"
)

// Runner defines the interface for the background job service.
type Runner interface {
	SetUpdateCallback(func(*model.SearchJob))

	// Start validates the configuration and launches a background job. It
	// fails without starting anything when validation fails or another job
	// is already active.
	Start(cfg model.SearchConfig) (*model.SearchJob, error)

	// Cancel requests cancellation of an active job.
	Cancel(id string) error

	GetJob(id string) (*model.SearchJob, bool)
	ActiveJob() (*model.SearchJob, bool)
	AllJobs() []*model.SearchJob
}
