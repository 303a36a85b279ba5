package main

import (
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gsqget/gsq-downloader/internal/catalog"
	"github.com/gsqget/gsq-downloader/internal/config"
	"github.com/gsqget/gsq-downloader/internal/download"
	"github.com/gsqget/gsq-downloader/internal/geo"
	"github.com/gsqget/gsq-downloader/internal/gsq"
	"github.com/gsqget/gsq-downloader/internal/history"
	"github.com/gsqget/gsq-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.gsqget.gsq-downloader"
	AppName = "GSQ Polygon Data Downloader"

	// Environment override for the portal API base URL
	EnvPortalURL = "GSQ_PORTAL_URL"

	HistoryFileName = "runs.db"
)

func main() {
	// Optional .env file for local overrides
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	logger.Info().Str("version", version).Msg("starting GSQ downloader")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow(AppName)

	settings := config.NewSettings(myApp)

	// Portal URL priority: environment, then saved preference, then default
	portalURL := os.Getenv(EnvPortalURL)
	if portalURL == "" {
		portalURL = settings.GetPortalURL()
	}
	client := gsq.NewClient(portalURL, logger)

	runs, err := history.New(historyPath(myApp.Storage().RootURI().Path()))
	if err != nil {
		logger.Warn().Err(err).Msg("run history unavailable")
		runs = nil
	} else {
		defer runs.Close()
	}

	cat := catalog.Default()
	svc := download.NewService(client, cat, geo.QueenslandBounds, logger)

	ui.NewRootUI(myWindow, myApp, svc, cat, geo.QueenslandBounds, runs, logger)

	myWindow.ShowAndRun()
}

// historyPath places the run history database in the app storage directory,
// falling back to the working directory when storage is unavailable.
func historyPath(storageRoot string) string {
	if storageRoot == "" {
		return HistoryFileName
	}
	if err := os.MkdirAll(storageRoot, 0755); err != nil {
		return HistoryFileName
	}
	return filepath.Join(storageRoot, HistoryFileName)
}
