// Package summary renders a human-readable preview of the selected
// search/download configuration. Build never fails: coordinate parse errors
// are reported inline as an invalid-coordinates note instead of propagating.
package summary

import (
	"fmt"
	"strings"

	"github.com/gsqget/gsq-downloader/internal/catalog"
	"github.com/gsqget/gsq-downloader/internal/geo"
	"github.com/gsqget/gsq-downloader/internal/model"
)

const separatorWidth = 50

// Build assembles the configuration summary text shown on the Download tab.
// Pure function of the config, catalog, and bounds.
func Build(cfg model.SearchConfig, cat *catalog.Catalog, bounds geo.Bounds) string {
	dataType, _ := cat.DataTypeByName(cfg.DataTypeName)
	terms := catalog.DescribeTerms(dataType, cfg.SearchMode, cfg.CustomTerms)

	coordsInfo := "Invalid or missing coordinates"
	if polygon, err := geo.ParsePolygon(cfg.CoordinatesText, bounds); err == nil {
		coordsInfo = fmt.Sprintf("Valid polygon with %d vertices", polygon.VertexCount())
	}

	status := "Ready for download"
	if cfg.PreviewMode {
		status = "Ready for preview"
	}

	var b strings.Builder
	b.WriteString("DOWNLOAD CONFIGURATION\n")
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Search Area: %s\n", cfg.RegionName)
	fmt.Fprintf(&b, "   Coordinates: %s\n\n", coordsInfo)

	fmt.Fprintf(&b, "Data Type: %s\n", cfg.DataTypeName)
	fmt.Fprintf(&b, "   Search Terms: %s\n", terms)
	fmt.Fprintf(&b, "   File Formats: %s\n\n", cfg.FormatName)

	b.WriteString("Settings:\n")
	fmt.Fprintf(&b, "   Max Datasets: %d\n", cfg.MaxDatasets)
	fmt.Fprintf(&b, "   Output Directory: %s\n", cfg.OutputDir)
	fmt.Fprintf(&b, "   Precise Filtering: %s\n", yesNo(cfg.PreciseFiltering))
	fmt.Fprintf(&b, "   Preview Mode: %s\n\n", yesNo(cfg.PreviewMode))

	fmt.Fprintf(&b, "Status: %s\n", status)

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
