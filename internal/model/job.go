package model

import (
	"fmt"
	"time"
)

// SearchMode selects how the search query is assembled.
type SearchMode string

const (
	// SearchModeSuggested uses the data type's suggested terms
	SearchModeSuggested SearchMode = "suggested"

	// SearchModeCustom uses user-entered terms
	SearchModeCustom SearchMode = "custom"

	// SearchModeAll matches everything
	SearchModeAll SearchMode = "all"
)

// SearchConfig captures the full form state of one search/download run.
type SearchConfig struct {
	RegionName       string
	CoordinatesText  string // raw multi-line "lat,lon" input
	DataTypeName     string
	SearchMode       SearchMode
	CustomTerms      string
	FormatName       string
	MaxDatasets      int
	OutputDir        string
	PreciseFiltering bool
	PreviewMode      bool
}

// SearchJob represents one background search or search-and-download run.
type SearchJob struct {
	ID         string
	Config     SearchConfig
	Query      string // resolved search query sent to the portal
	Status     JobStatus
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time

	// Exactly one of these is set on success, depending on PreviewMode.
	Results *ResultSet
	Report  *DownloadReport
}

// ElapsedString returns the job duration formatted as mm:ss, or hh:mm:ss for
// long runs, and "—" while the job has not finished.
func (j *SearchJob) ElapsedString() string {
	if j.StartedAt.IsZero() || j.FinishedAt.IsZero() {
		return "—"
	}

	total := int(j.FinishedAt.Sub(j.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// OutcomeLine returns a one-line description of the job result for the status
// bar and the run history.
func (j *SearchJob) OutcomeLine() string {
	switch j.Status {
	case JobStatusCompleted:
		if j.Results != nil {
			return fmt.Sprintf("Preview found %d datasets", len(j.Results.Results))
		}
		if j.Report != nil {
			return fmt.Sprintf("Downloaded %d/%d resources from %d datasets",
				j.Report.ResourcesSaved, j.Report.ResourcesAttempted, j.Report.DatasetsFound)
		}
		return "Completed"
	case JobStatusError:
		return "Error: " + j.LastError
	case JobStatusCancelled:
		return "Cancelled"
	default:
		return j.Status.String()
	}
}
