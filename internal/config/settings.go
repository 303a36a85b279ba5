package config

import (
	"fyne.io/fyne/v2"

	"github.com/gsqget/gsq-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir  = "output_directory"
	KeyMaxResults = "max_datasets"
	KeyPrecise    = "precise_filtering"
	KeyPreview    = "preview_mode"
	KeyPortalURL  = "portal_api_url"
)

// Default values
const (
	DefaultMaxResults = 20
	MinMaxResults     = 1
	MaxMaxResults     = 1000
	DefaultPrecise    = true
	DefaultPreview    = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured download destination
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir := platform.DefaultOutputDir()
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the download destination
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetMaxDatasets returns the maximum number of datasets per run
func (s *Settings) GetMaxDatasets() int {
	value := s.app.Preferences().Int(KeyMaxResults)
	if value <= 0 {
		s.SetMaxDatasets(DefaultMaxResults)
		return DefaultMaxResults
	}
	return value
}

// SetMaxDatasets sets the maximum number of datasets per run, clamped to the
// range the portal accepts
func (s *Settings) SetMaxDatasets(count int) {
	if count < MinMaxResults {
		count = MinMaxResults
	}
	if count > MaxMaxResults {
		count = MaxMaxResults
	}
	s.app.Preferences().SetInt(KeyMaxResults, count)
}

// GetPreciseFiltering returns whether the precise point-in-polygon test runs
func (s *Settings) GetPreciseFiltering() bool {
	return s.app.Preferences().BoolWithFallback(KeyPrecise, DefaultPrecise)
}

// SetPreciseFiltering sets the precise filtering flag
func (s *Settings) SetPreciseFiltering(precise bool) {
	s.app.Preferences().SetBool(KeyPrecise, precise)
}

// GetPreviewMode returns whether runs search without downloading
func (s *Settings) GetPreviewMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyPreview, DefaultPreview)
}

// SetPreviewMode sets the preview flag
func (s *Settings) SetPreviewMode(preview bool) {
	s.app.Preferences().SetBool(KeyPreview, preview)
}

// GetPortalURL returns the portal API base URL override, empty for the default
func (s *Settings) GetPortalURL() string {
	return s.app.Preferences().String(KeyPortalURL)
}

// SetPortalURL sets the portal API base URL override
func (s *Settings) SetPortalURL(url string) {
	s.app.Preferences().SetString(KeyPortalURL, url)
}
