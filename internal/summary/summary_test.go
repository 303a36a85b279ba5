package summary

import (
	"strings"
	"testing"

	"github.com/gsqget/gsq-downloader/internal/catalog"
	"github.com/gsqget/gsq-downloader/internal/geo"
	"github.com/gsqget/gsq-downloader/internal/model"
)

func testConfig() model.SearchConfig {
	return model.SearchConfig{
		RegionName:       "Mount Isa Mineral Province",
		CoordinatesText:  "-21.0,139.0\n-21.0,141.0\n-20.0,141.0\n-20.0,139.0\n-21.0,139.0",
		DataTypeName:     "Mining Data",
		SearchMode:       model.SearchModeSuggested,
		FormatName:       "PDF Reports",
		MaxDatasets:      20,
		OutputDir:        "/tmp/gsq_polygon_data",
		PreciseFiltering: true,
		PreviewMode:      false,
	}
}

func TestBuild(t *testing.T) {
	text := Build(testConfig(), catalog.Default(), geo.QueenslandBounds)

	expectations := []string{
		"Search Area: Mount Isa Mineral Province",
		"Valid polygon with 4 vertices",
		"Data Type: Mining Data",
		"Search Terms: mining OR exploration OR resource",
		"File Formats: PDF Reports",
		"Max Datasets: 20",
		"Output Directory: /tmp/gsq_polygon_data",
		"Precise Filtering: Yes",
		"Preview Mode: No",
		"Status: Ready for download",
	}

	for _, expected := range expectations {
		if !strings.Contains(text, expected) {
			t.Errorf("Summary should contain %q, got:\n%s", expected, text)
		}
	}
}

func TestBuild_InvalidCoordinatesDoNotFail(t *testing.T) {
	cfg := testConfig()
	cfg.CoordinatesText = "not a coordinate"

	text := Build(cfg, catalog.Default(), geo.QueenslandBounds)
	if !strings.Contains(text, "Invalid or missing coordinates") {
		t.Errorf("Summary should report invalid coordinates, got:\n%s", text)
	}
}

func TestBuild_PreviewStatus(t *testing.T) {
	cfg := testConfig()
	cfg.PreviewMode = true

	text := Build(cfg, catalog.Default(), geo.QueenslandBounds)
	if !strings.Contains(text, "Status: Ready for preview") {
		t.Errorf("Summary should report preview status, got:\n%s", text)
	}
	if !strings.Contains(text, "Preview Mode: Yes") {
		t.Error("Summary should flag preview mode")
	}
}

func TestBuild_EmptyCustomTerms(t *testing.T) {
	cfg := testConfig()
	cfg.SearchMode = model.SearchModeCustom
	cfg.CustomTerms = "  "

	text := Build(cfg, catalog.Default(), geo.QueenslandBounds)
	if !strings.Contains(text, "Search Terms: No terms") {
		t.Errorf("Summary should report missing custom terms, got:\n%s", text)
	}
}
