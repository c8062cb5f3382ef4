package tui

import "github.com/mmcdole/galleria/internal/domain"

// Message types for the TUI

// PhotosLoadedMsg carries a finished load. RequestID ties it to the load
// that produced it; results for superseded requests are dropped.
type PhotosLoadedMsg struct {
	RequestID int
	Screen    Screen
	Request   domain.Request
	Result    domain.LoadResult
	Err       error
}

// ViewerOpenedMsg signals that a photo was handed to the viewer
type ViewerOpenedMsg struct {
	Photo domain.Photo
	Err   error
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
