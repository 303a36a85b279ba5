package gsq

import (
	"context"

	"github.com/gsqget/gsq-downloader/internal/model"
)

// Searcher defines the interface the UI and job service consume. The context
// carries cancellation: cancelling it stops pagination and skips any resource
// not yet started, though the request in flight may still complete.
type Searcher interface {
	// Search returns datasets matching the polygon and query without
	// downloading anything.
	Search(ctx context.Context, polygon model.Polygon, query string, filters []string,
		maxResults int, precise bool) (*model.ResultSet, error)

	// SearchAndDownload performs Search and then downloads matching
	// resources into destDir, one subdirectory per dataset. An empty
	// formats list downloads every resource.
	SearchAndDownload(ctx context.Context, polygon model.Polygon, query string, filters []string,
		maxDatasets int, destDir string, formats []string, precise bool) (*model.DownloadReport, error)
}
