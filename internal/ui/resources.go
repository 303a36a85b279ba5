package ui

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
)

// Candidate icon file names checked in order at startup
var IconCandidates = []string{
	"gsq-downloader.png",
	"gsq_icon.png",
	"icon.png",
	"assets/icon.png",
}

// LoadWindowIcon returns the first loadable icon resource from the candidate
// file names. The application runs fine without one.
func LoadWindowIcon() (fyne.Resource, error) {
	for _, name := range IconCandidates {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		res, err := fyne.LoadResourceFromPath(name)
		if err == nil {
			return res, nil
		}
	}
	return nil, fmt.Errorf("no window icon found")
}
