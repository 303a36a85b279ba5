package model

// Resource is a single downloadable file attached to a dataset.
type Resource struct {
	ID     string
	Name   string
	Format string // upper-case format tag, e.g. "PDF", "CSV"
	URL    string
	Size   int64 // bytes, 0 if the portal does not report it
}

// Dataset is one search hit from the portal.
type Dataset struct {
	ID        string
	Title     string
	Type      string // portal type tag, e.g. "report"
	Notes     string
	Resources []Resource
	Lon       float64 // representative point used for precise filtering
	Lat       float64
	HasPoint  bool // false when the portal record carries no geometry
}

// ResultSet is the outcome of a polygon search without downloading.
type ResultSet struct {
	Results []Dataset
	Total   int // portal-reported total before pagination and precise filtering
}

// DownloadReport summarises a completed search-and-download run.
type DownloadReport struct {
	DatasetsFound      int
	ResourcesAttempted int
	ResourcesSaved     int
	OutputDir          string
	Results            []Dataset // datasets whose resources were attempted
}
