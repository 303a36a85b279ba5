package ui

import (
	"fmt"
	"strings"

	"github.com/gsqget/gsq-downloader/internal/history"
	"github.com/gsqget/gsq-downloader/internal/model"
)

// PreviewText renders the results of a preview run for the results panel.
func PreviewText(rs *model.ResultSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s PREVIEW RESULTS\n%s\n\n", IconPreview, strings.Repeat("=", SeparatorWidth))
	fmt.Fprintf(&b, "Found %d datasets matching your criteria:\n\n", len(rs.Results))

	for i, ds := range rs.Results {
		if i >= PreviewListLimit {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, truncateTitle(ds.Title, PreviewTitleLimit))
		fmt.Fprintf(&b, "   Resources: %d\n", len(ds.Resources))
		fmt.Fprintf(&b, "   Type: %s\n\n", datasetType(ds))
	}

	if len(rs.Results) > PreviewListLimit {
		fmt.Fprintf(&b, "... and %d more datasets\n\n", len(rs.Results)-PreviewListLimit)
	}

	b.WriteString("To download these datasets, disable Preview Mode and run again.")
	return b.String()
}

// ReportText renders a completed download run for the results panel.
func ReportText(r *model.DownloadReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s DOWNLOAD COMPLETE!\n%s\n\n", IconSuccess, strings.Repeat("=", SeparatorWidth))
	fmt.Fprintf(&b, "%s Summary:\n", IconStats)
	fmt.Fprintf(&b, "   Datasets found: %d\n", r.DatasetsFound)
	fmt.Fprintf(&b, "   Resources downloaded: %d/%d\n", r.ResourcesSaved, r.ResourcesAttempted)
	fmt.Fprintf(&b, "   Output directory: %s\n\n", r.OutputDir)

	if len(r.Results) > 0 {
		fmt.Fprintf(&b, "%s Sample datasets downloaded:\n", IconSummary)
		for i, ds := range r.Results {
			if i >= SampleListLimit {
				break
			}
			fmt.Fprintf(&b, "   %d. %s\n", i+1, truncateTitle(ds.Title, SampleTitleLimit))
			fmt.Fprintf(&b, "      Resources: %d\n", len(ds.Resources))
		}
		fmt.Fprintf(&b, "\n%s Files saved to: %s", IconFolder, r.OutputDir)
	}

	return b.String()
}

// ErrorText renders a failed run for the results panel.
func ErrorText(message string) string {
	return fmt.Sprintf("%s Error: %s", IconCancel, message)
}

// CancelledText renders a cancelled run for the results panel.
func CancelledText() string {
	return fmt.Sprintf("%s Download cancelled before completion.", IconCancel)
}

// HistoryText renders recent runs for the history panel, newest first.
func HistoryText(runs []history.Run) string {
	if len(runs) == 0 {
		return "No previous runs."
	}

	var b strings.Builder
	for _, run := range runs {
		mode := "download"
		if run.Preview {
			mode = "preview"
		}
		fmt.Fprintf(&b, "%s  %s %s (%s)\n", run.StartedAt.Format("2006-01-02 15:04"),
			strings.ToUpper(run.Status), mode, run.Region)
		if run.Status == string(model.JobStatusError) && run.LastError != "" {
			fmt.Fprintf(&b, "    %s\n", run.LastError)
		} else {
			fmt.Fprintf(&b, "    %d datasets, %d/%d resources saved\n",
				run.DatasetsFound, run.ResourcesSaved, run.ResourcesAttempted)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncateTitle(title string, limit int) string {
	if len(title) <= limit {
		return title
	}
	return title[:limit] + "..."
}

func datasetType(ds model.Dataset) string {
	if ds.Type == "" {
		return "unknown"
	}
	return ds.Type
}
