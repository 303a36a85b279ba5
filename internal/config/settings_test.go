package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestSettings_OutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// First call falls back to the platform default and persists it
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Expected non-empty default output directory")
	}
	if got := app.Preferences().String(KeyOutputDir); got != dir {
		t.Errorf("Expected persisted default %q, got %q", dir, got)
	}

	settings.SetOutputDirectory("/tmp/gsq_data")
	if got := settings.GetOutputDirectory(); got != "/tmp/gsq_data" {
		t.Errorf("Expected /tmp/gsq_data, got %q", got)
	}
}

func TestSettings_MaxDatasets(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetMaxDatasets(); got != DefaultMaxResults {
		t.Errorf("Expected default %d, got %d", DefaultMaxResults, got)
	}

	settings.SetMaxDatasets(50)
	if got := settings.GetMaxDatasets(); got != 50 {
		t.Errorf("Expected 50, got %d", got)
	}
}

func TestSettings_MaxDatasetsClamped(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"below minimum", -5, MinMaxResults},
		{"zero", 0, MinMaxResults},
		{"minimum", 1, 1},
		{"maximum", 1000, 1000},
		{"above maximum", 5000, MaxMaxResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings.SetMaxDatasets(tt.input)
			if got := settings.GetMaxDatasets(); got != tt.expected {
				t.Errorf("SetMaxDatasets(%d): expected %d, got %d", tt.input, tt.expected, got)
			}
		})
	}
}

func TestSettings_PreciseFiltering(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetPreciseFiltering() {
		t.Error("Expected precise filtering enabled by default")
	}

	settings.SetPreciseFiltering(false)
	if settings.GetPreciseFiltering() {
		t.Error("Expected precise filtering disabled after SetPreciseFiltering(false)")
	}
}

func TestSettings_PreviewMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetPreviewMode() {
		t.Error("Expected preview mode disabled by default")
	}

	settings.SetPreviewMode(true)
	if !settings.GetPreviewMode() {
		t.Error("Expected preview mode enabled after SetPreviewMode(true)")
	}
}

func TestSettings_PortalURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetPortalURL(); got != "" {
		t.Errorf("Expected empty portal URL by default, got %q", got)
	}

	settings.SetPortalURL("http://localhost:5000/api/3/action")
	if got := settings.GetPortalURL(); got != "http://localhost:5000/api/3/action" {
		t.Errorf("Unexpected portal URL %q", got)
	}
}
