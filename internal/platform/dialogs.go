// Package platform wraps the host facilities the app needs: native file
// dialogs and the mailbox that carries async load results back to the game
// loop.
package platform

import "github.com/sqweek/dialog"

// OpenCSVDialog shows the native open-file picker filtered to CSV files.
// Returns dialog.ErrCancelled when the user dismisses it.
func OpenCSVDialog() (string, error) {
	return dialog.File().Title("Open CSV").Filter("CSV files", "csv").Filter("All files", "*").Load()
}

// SaveCSVDialog shows the native save-file picker filtered to CSV files.
// Returns dialog.ErrCancelled when the user dismisses it.
func SaveCSVDialog() (string, error) {
	return dialog.File().Title("Save CSV").Filter("CSV files", "csv").Save()
}

// Cancelled reports whether err is the user dismissing a dialog rather than
// a real failure.
func Cancelled(err error) bool {
	return err == dialog.ErrCancelled
}
