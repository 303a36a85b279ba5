package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/gsqget/gsq-downloader/internal/catalog"
	"github.com/gsqget/gsq-downloader/internal/config"
	"github.com/gsqget/gsq-downloader/internal/download"
	"github.com/gsqget/gsq-downloader/internal/geo"
	"github.com/gsqget/gsq-downloader/internal/history"
	"github.com/gsqget/gsq-downloader/internal/model"
	"github.com/gsqget/gsq-downloader/internal/platform"
	"github.com/gsqget/gsq-downloader/internal/summary"
)

// Defaults for fresh form state
const (
	DefaultRegionName   = "Mount Isa Mineral Province"
	DefaultDataTypeName = "All Data Types (Recommended)"
	DefaultFormatName   = "All Formats (Recommended)"
	DefaultCustomTerms  = "copper gold mining"
)

// Example polygon offered by the Load Example button
const exampleCoordinates = "-21,139\n-21,141\n-20,141\n-20,139\n-21,139"

const historyWriteTimeout = 5 * time.Second

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	runner   download.Runner
	catalog  *catalog.Catalog
	bounds   geo.Bounds
	settings *config.Settings
	runs     *history.Store
	log      zerolog.Logger

	// Search Area tab
	regionSelect *widget.Select
	regionDesc   *widget.Label
	coordsEntry  *widget.Entry

	// Data Type tab
	dataTypeSelect *widget.Select
	searchModes    *widget.RadioGroup
	customTerms    *widget.Entry
	formatSelect   *widget.Select

	// Settings tab
	maxDatasets *widget.Entry
	outputDir   *widget.Entry
	precise     *widget.Check
	preview     *widget.Check

	// Download tab
	summaryText   *widget.Entry
	progressLabel *widget.Label
	progressBar   *widget.ProgressBarInfinite
	startBtn      *widget.Button
	cancelBtn     *widget.Button
	resultsText   *widget.Entry
	historyText   *widget.Entry

	statusLabel *widget.Label
	activeJobID string
}

// Search mode labels shown in the radio group
const (
	modeSuggestedLabel = "Use suggested terms"
	modeCustomLabel    = "Custom terms"
	modeAllLabel       = "Search everything"
)

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, runner download.Runner, cat *catalog.Catalog,
	bounds geo.Bounds, runs *history.Store, logger zerolog.Logger) *RootUI {

	settings := config.NewSettings(app)

	// Ensure the configured destination exists up front
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		logger.Warn().Err(err).Msg("could not create output directory")
	}

	ui := &RootUI{
		window:   window,
		runner:   runner,
		catalog:  cat,
		bounds:   bounds,
		settings: settings,
		runs:     runs,
		log:      logger,
	}

	window.SetTitle(IconGlobe + " GSQ Polygon Data Downloader")
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if icon, err := LoadWindowIcon(); err == nil {
		window.SetIcon(icon)
	} else {
		logger.Debug().Msg("no window icon found, using system default")
	}

	ui.runner.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem(IconArea+" Search Area", ui.buildAreaTab()),
		container.NewTabItem(IconScience+" Data Type", ui.buildDataTab()),
		container.NewTabItem(IconSettings+" Settings", ui.buildSettingsTab()),
		container.NewTabItem(IconRocket+" Download", ui.buildDownloadTab()),
	)

	ui.statusLabel = widget.NewLabel(StatusReady)

	content := container.NewBorder(nil, ui.statusLabel, nil, nil, tabs)
	ui.window.SetContent(content)

	ui.refreshSummary()
	ui.refreshHistory()
}

// buildAreaTab creates the region and coordinates tab
func (ui *RootUI) buildAreaTab() fyne.CanvasObject {
	ui.regionDesc = widget.NewLabel("")
	ui.regionDesc.Wrapping = fyne.TextWrapWord

	ui.coordsEntry = widget.NewMultiLineEntry()
	ui.coordsEntry.SetPlaceHolder("-21.0,139.0")
	ui.coordsEntry.SetMinRowsVisible(CoordsRows)

	// Created after the coordinate entry: selecting a region fills it in
	ui.regionSelect = widget.NewSelect(ui.catalog.RegionNames(), ui.onRegionChange)
	ui.regionSelect.SetSelected(DefaultRegionName)

	instructions := widget.NewLabel(fmt.Sprintf(
		"Enter coordinates as: latitude,longitude (e.g., -21.0,139.0)\n"+
			"%s range: Latitude %g to %g, Longitude %g to %g\n"+
			"Minimum %d points required. One coordinate per line.",
		ui.bounds.Name, ui.bounds.MinLat, ui.bounds.MaxLat,
		ui.bounds.MinLon, ui.bounds.MaxLon, geo.MinPolygonVertices))

	buttons := container.NewHBox(
		widget.NewButton("Load Example", ui.onLoadExample),
		widget.NewButton("Clear", ui.onClearCoords),
		widget.NewButton("Validate", ui.onValidateCoords),
	)

	return container.NewVBox(
		widget.NewLabelWithStyle("Select Search Region:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.regionSelect,
		ui.regionDesc,
		widget.NewLabelWithStyle("Custom Coordinates (Latitude, Longitude)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		instructions,
		ui.coordsEntry,
		buttons,
	)
}

// buildDataTab creates the data type, search terms and format tab
func (ui *RootUI) buildDataTab() fyne.CanvasObject {
	ui.dataTypeSelect = widget.NewSelect(ui.catalog.DataTypeNames(), func(string) { ui.refreshSummary() })
	ui.dataTypeSelect.SetSelected(DefaultDataTypeName)

	ui.customTerms = widget.NewEntry()
	ui.customTerms.SetText(DefaultCustomTerms)

	ui.searchModes = widget.NewRadioGroup(
		[]string{modeSuggestedLabel, modeCustomLabel, modeAllLabel},
		func(string) { ui.refreshSummary() },
	)
	ui.searchModes.SetSelected(modeSuggestedLabel)

	ui.formatSelect = widget.NewSelect(ui.catalog.FileFormatNames(), func(string) { ui.refreshSummary() })
	ui.formatSelect.SetSelected(DefaultFormatName)

	return container.NewVBox(
		widget.NewLabelWithStyle("Data Type:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.dataTypeSelect,
		widget.NewLabelWithStyle("Search Terms:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.searchModes,
		ui.customTerms,
		widget.NewLabelWithStyle("File Formats:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.formatSelect,
	)
}

// buildSettingsTab creates the limits and destination tab
func (ui *RootUI) buildSettingsTab() fyne.CanvasObject {
	ui.maxDatasets = widget.NewEntry()
	ui.maxDatasets.SetText(strconv.Itoa(ui.settings.GetMaxDatasets()))

	ui.outputDir = widget.NewEntry()
	ui.outputDir.SetText(ui.settings.GetOutputDirectory())

	browseBtn := widget.NewButton("Browse", ui.onBrowseOutputDir)

	ui.precise = widget.NewCheck("Use precise polygon filtering (slower but more accurate)", func(bool) { ui.refreshSummary() })
	ui.precise.SetChecked(ui.settings.GetPreciseFiltering())

	ui.preview = widget.NewCheck("Preview mode (search only, don't download files)", func(bool) { ui.refreshSummary() })
	ui.preview.SetChecked(ui.settings.GetPreviewMode())

	return container.NewVBox(
		widget.NewLabelWithStyle("Maximum Datasets:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.maxDatasets,
		widget.NewLabel(fmt.Sprintf("(Recommended: 20-50 for testing, up to %d for bulk downloads)", config.MaxMaxResults)),
		widget.NewLabelWithStyle("Output Directory:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, browseBtn, ui.outputDir),
		widget.NewLabelWithStyle("Filtering Options:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.precise,
		ui.preview,
	)
}

// buildDownloadTab creates the summary, progress, results and history tab
func (ui *RootUI) buildDownloadTab() fyne.CanvasObject {
	ui.summaryText = widget.NewMultiLineEntry()
	ui.summaryText.Disable()
	ui.summaryText.SetMinRowsVisible(8)

	ui.progressLabel = widget.NewLabel(StatusReadyToStart)
	ui.progressBar = widget.NewProgressBarInfinite()
	ui.progressBar.Stop()

	ui.startBtn = widget.NewButton(IconRocket+" Start Download", ui.onStartClick)
	ui.cancelBtn = widget.NewButton(IconCancel+" Cancel", ui.onCancelClick)
	ui.cancelBtn.Disable()

	openBtn := widget.NewButton(IconFolder+" Open Output Folder", ui.onOpenOutputFolder)
	summaryBtn := widget.NewButton(IconSummary+" Update Summary", ui.refreshSummary)

	buttons := container.NewHBox(ui.startBtn, ui.cancelBtn, openBtn, summaryBtn)

	ui.resultsText = widget.NewMultiLineEntry()
	ui.resultsText.Disable()
	ui.resultsText.SetMinRowsVisible(10)

	ui.historyText = widget.NewMultiLineEntry()
	ui.historyText.Disable()
	ui.historyText.SetMinRowsVisible(6)

	return container.NewVBox(
		widget.NewLabelWithStyle("Download Summary", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.summaryText,
		ui.progressLabel,
		ui.progressBar,
		buttons,
		widget.NewLabelWithStyle("Download Results", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.resultsText,
		widget.NewLabelWithStyle("Recent Runs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ui.historyText,
	)
}

// onRegionChange updates the description and auto-fills coordinates for
// predefined regions
func (ui *RootUI) onRegionChange(name string) {
	region, ok := ui.catalog.RegionByName(name)
	if !ok {
		return
	}

	ui.regionDesc.SetText(region.Description)

	if !region.IsCustom() {
		ui.coordsEntry.SetText(geo.FormatPolygon(region.Polygon()))
	}
	ui.refreshSummary()
}

// onLoadExample fills the coordinate entry with a small rectangle near Mount Isa
func (ui *RootUI) onLoadExample() {
	ui.coordsEntry.SetText(exampleCoordinates)
	ui.refreshSummary()
}

func (ui *RootUI) onClearCoords() {
	ui.coordsEntry.SetText("")
	ui.refreshSummary()
}

// onValidateCoords parses the entered coordinates and reports the outcome
func (ui *RootUI) onValidateCoords() {
	polygon, err := geo.ParsePolygon(ui.coordsEntry.Text, ui.bounds)
	if err != nil {
		dialog.ShowError(fmt.Errorf("invalid coordinates: %w", err), ui.window)
		return
	}
	dialog.ShowInformation("Validation",
		fmt.Sprintf("%s Valid polygon with %d vertices", IconSuccess, polygon.VertexCount()), ui.window)
}

// onBrowseOutputDir opens a native folder picker
func (ui *RootUI) onBrowseOutputDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputDir.SetText(uri.Path())
		ui.refreshSummary()
	}, ui.window)
}

// currentConfig assembles the form state into a run configuration
func (ui *RootUI) currentConfig() model.SearchConfig {
	maxDatasets, err := strconv.Atoi(strings.TrimSpace(ui.maxDatasets.Text))
	if err != nil || maxDatasets <= 0 {
		maxDatasets = config.DefaultMaxResults
	}

	mode := model.SearchModeSuggested
	switch ui.searchModes.Selected {
	case modeCustomLabel:
		mode = model.SearchModeCustom
	case modeAllLabel:
		mode = model.SearchModeAll
	}

	return model.SearchConfig{
		RegionName:       ui.regionSelect.Selected,
		CoordinatesText:  ui.coordsEntry.Text,
		DataTypeName:     ui.dataTypeSelect.Selected,
		SearchMode:       mode,
		CustomTerms:      ui.customTerms.Text,
		FormatName:       ui.formatSelect.Selected,
		MaxDatasets:      maxDatasets,
		OutputDir:        strings.TrimSpace(ui.outputDir.Text),
		PreciseFiltering: ui.precise.Checked,
		PreviewMode:      ui.preview.Checked,
	}
}

// refreshSummary rebuilds the configuration summary text
func (ui *RootUI) refreshSummary() {
	if ui.summaryText == nil {
		return
	}
	ui.summaryText.SetText(summary.Build(ui.currentConfig(), ui.catalog, ui.bounds))
}

// persistSettings saves changed form values to preferences
func (ui *RootUI) persistSettings(cfg model.SearchConfig) {
	ui.settings.SetMaxDatasets(cfg.MaxDatasets)
	ui.settings.SetOutputDirectory(cfg.OutputDir)
	ui.settings.SetPreciseFiltering(cfg.PreciseFiltering)
	ui.settings.SetPreviewMode(cfg.PreviewMode)
}

// onStartClick validates the form and starts a background run
func (ui *RootUI) onStartClick() {
	cfg := ui.currentConfig()

	job, err := ui.runner.Start(cfg)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.persistSettings(cfg)
	ui.activeJobID = job.ID
	ui.log.Info().Str("job_id", job.ID).Bool("preview", cfg.PreviewMode).Msg("run started")

	ui.startBtn.Disable()
	ui.cancelBtn.Enable()
	ui.progressBar.Start()
	ui.resultsText.SetText("")
	if cfg.PreviewMode {
		ui.progressLabel.SetText(StatusSearching)
		ui.statusLabel.SetText(StatusSearching)
	} else {
		ui.progressLabel.SetText(StatusDownloading)
		ui.statusLabel.SetText(StatusDownloading)
	}
}

// onCancelClick requests cancellation of the active run
func (ui *RootUI) onCancelClick() {
	if ui.activeJobID == "" {
		return
	}
	if err := ui.runner.Cancel(ui.activeJobID); err != nil {
		ui.log.Warn().Err(err).Str("job_id", ui.activeJobID).Msg("cancel failed")
		return
	}
	ui.progressLabel.SetText(StatusCancelling)
	ui.statusLabel.SetText(StatusCancelling)
	dialog.ShowInformation("Cancel",
		"Cancellation requested. The file currently being saved may finish writing.", ui.window)
}

// onOpenOutputFolder opens the destination in the system file manager
func (ui *RootUI) onOpenOutputFolder() {
	dir := strings.TrimSpace(ui.outputDir.Text)
	if err := platform.OpenFolderInManager(dir); err != nil {
		dialog.ShowInformation("Folder Not Found",
			fmt.Sprintf("Output directory does not exist: %s", dir), ui.window)
	}
}

// onJobUpdate handles job state changes from the background service. It is
// called from a worker goroutine, so all widget access goes through fyne.Do.
func (ui *RootUI) onJobUpdate(job *model.SearchJob) {
	if job == nil {
		return
	}

	if job.Status.IsFinished() {
		ui.recordRun(job)
	}

	fyne.Do(func() {
		ui.applyJobUpdate(job)
	})
}

// applyJobUpdate mutates widgets for a job state change. UI thread only.
func (ui *RootUI) applyJobUpdate(job *model.SearchJob) {
	switch job.Status {
	case model.JobStatusSearching:
		ui.progressLabel.SetText(StatusSearching)
		ui.statusLabel.SetText(StatusSearching)

	case model.JobStatusDownloading:
		ui.progressLabel.SetText(StatusDownloading)
		ui.statusLabel.SetText(StatusDownloading)

	case model.JobStatusCancelling:
		ui.progressLabel.SetText(StatusCancelling)
		ui.statusLabel.SetText(StatusCancelling)

	case model.JobStatusCompleted:
		if job.Results != nil {
			ui.resultsText.SetText(PreviewText(job.Results))
			ui.progressLabel.SetText(StatusPreviewComplete)
			ui.statusLabel.SetText(job.OutcomeLine())
		} else if job.Report != nil {
			ui.resultsText.SetText(ReportText(job.Report))
			ui.progressLabel.SetText(StatusCompleted)
			ui.statusLabel.SetText(job.OutcomeLine())
			fyne.CurrentApp().SendNotification(&fyne.Notification{
				Title:   "Download complete",
				Content: job.OutcomeLine(),
			})
		}
		ui.finishRun()

	case model.JobStatusCancelled:
		ui.resultsText.SetText(CancelledText())
		ui.progressLabel.SetText(StatusCancelled)
		ui.statusLabel.SetText(StatusCancelled)
		ui.finishRun()

	case model.JobStatusError:
		ui.resultsText.SetText(ErrorText(job.LastError))
		ui.progressLabel.SetText("Error: " + job.LastError)
		ui.statusLabel.SetText(job.OutcomeLine())
		dialog.ShowError(fmt.Errorf("download failed: %s", job.LastError), ui.window)
		ui.finishRun()
	}
}

// finishRun resets the run controls after a terminal state. UI thread only.
func (ui *RootUI) finishRun() {
	ui.activeJobID = ""
	ui.progressBar.Stop()
	ui.startBtn.Enable()
	ui.cancelBtn.Disable()
	ui.refreshHistory()
}

// recordRun persists a finished job to the run history
func (ui *RootUI) recordRun(job *model.SearchJob) {
	if ui.runs == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
	defer cancel()

	if err := ui.runs.RecordJob(ctx, job); err != nil {
		ui.log.Warn().Err(err).Str("job_id", job.ID).Msg("could not record run history")
	}
}

// refreshHistory reloads the recent-runs panel. UI thread only.
func (ui *RootUI) refreshHistory() {
	if ui.historyText == nil || ui.runs == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
	defer cancel()

	recent, err := ui.runs.Recent(ctx, HistoryListLimit)
	if err != nil {
		ui.log.Warn().Err(err).Msg("could not load run history")
		return
	}
	ui.historyText.SetText(HistoryText(recent))
}
