package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconGlobe    = "🌏"
	IconRocket   = "🚀"
	IconCancel   = "❌"
	IconFolder   = "📁"
	IconSummary  = "📋"
	IconPreview  = "🔍"
	IconSuccess  = "✅"
	IconStats    = "📊"
	IconArea     = "📍"
	IconScience  = "🔬"
	IconSettings = "⚙️"
)

// Text fragments
const (
	DashPlaceholder = "—"
	SeparatorWidth  = 50
)

// Result listing limits, matching the portal UI conventions
const (
	PreviewListLimit  = 10
	SampleListLimit   = 5
	PreviewTitleLimit = 80
	SampleTitleLimit  = 60
	HistoryListLimit  = 25
)

// Layout sizing
const (
	WindowWidth  float32 = 760
	WindowHeight float32 = 640
	CoordsRows           = 8
)

// Status messages
const (
	StatusReady           = "Ready to download geological data"
	StatusReadyToStart    = "Ready to start download"
	StatusSearching       = "Searching datasets..."
	StatusDownloading     = "Downloading datasets..."
	StatusCancelling      = "Cancelling..."
	StatusCancelled       = "Download cancelled"
	StatusCompleted       = "Download completed successfully!"
	StatusPreviewComplete = "Preview completed"
)
