package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/galleria/internal/domain"
)

// Command factories for async operations

// LoadPhotosCmd runs one loader call. ctx is owned by the model so a newer
// request can cancel it.
func LoadPhotosCmd(ctx context.Context, loader PhotoLoader, screen Screen, req domain.Request, id int) tea.Cmd {
	return func() tea.Msg {
		result, err := loader.Load(ctx, req)
		return PhotosLoadedMsg{
			RequestID: id,
			Screen:    screen,
			Request:   req,
			Result:    result,
			Err:       err,
		}
	}
}

// OpenViewerCmd opens a photo in the external viewer
func OpenViewerCmd(viewer Viewer, photo domain.Photo) tea.Cmd {
	return func() tea.Msg {
		return ViewerOpenedMsg{Photo: photo, Err: viewer.Open(photo.ImageURL)}
	}
}

// RecordSearchCmd saves a submitted term to the history
func RecordSearchCmd(history SearchHistory, term string) tea.Cmd {
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		if err := history.Record(term); err != nil {
			return StatusMsg{Message: fmt.Sprintf("Could not save search history: %v", err), IsError: true}
		}
		return nil
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
