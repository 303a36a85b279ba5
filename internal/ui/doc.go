// Package ui implements the Fyne desktop interface: the tabbed main window,
// result text rendering, run history view and the compact theme.
package ui
