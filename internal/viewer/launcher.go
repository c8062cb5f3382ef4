package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mmcdole/galleria/internal/config"
)

// ErrNoURL is returned when a photo has no image URL to open
var ErrNoURL = errors.New("photo has no image url")

// Launcher opens image URLs in an external viewer
type Launcher struct {
	command string   // configured viewer command, empty for detection
	args    []string // additional arguments for the viewer
	goos    string
	logger  *slog.Logger

	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// candidateViewers lists URL-capable image viewers tried in order per platform
// before falling back to the system handler
var candidateViewers = map[string][]string{
	"linux":   {"imv", "feh", "nsxiv"},
	"freebsd": {"imv", "feh"},
}

// NewLauncher creates a launcher from the viewer config
func NewLauncher(cfg config.ViewerConfig, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:  cfg.Command,
		args:     cfg.Args,
		goos:     runtime.GOOS,
		logger:   logger,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Open shows url in the configured viewer, a detected one, or the system default.
// It does not wait for the viewer to exit.
func (l *Launcher) Open(url string) error {
	if url == "" {
		return ErrNoURL
	}

	if l.command != "" {
		name, args := l.configuredCommand(url)
		l.logger.Info("launching viewer", "command", name, "args", args)
		if err := l.start(name, args...); err != nil {
			return fmt.Errorf("failed to start %s: %w", l.command, err)
		}
		return nil
	}

	for _, candidate := range candidateViewers[l.goos] {
		if _, err := l.lookPath(candidate); err != nil {
			continue
		}
		if err := l.start(candidate, url); err == nil {
			l.logger.Info("launched with detected viewer", "viewer", candidate)
			return nil
		}
	}

	name, args := defaultCommand(l.goos, url)
	l.logger.Info("launching with system default", "os", l.goos, "url", url)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// configuredCommand builds the argv for the configured viewer, URL last.
// On macOS an app name not found in PATH is opened with "open -a".
func (l *Launcher) configuredCommand(url string) (string, []string) {
	args := append([]string{}, l.args...)

	if l.goos == "darwin" {
		if _, err := l.lookPath(l.command); err != nil {
			app := strings.TrimSuffix(filepath.Base(l.command), ".app")
			openArgs := []string{"-a", app}
			if len(args) > 0 {
				openArgs = append(openArgs, "--args")
				openArgs = append(openArgs, args...)
			}
			return "open", append(openArgs, url)
		}
	}

	return l.command, append(args, url)
}

// defaultCommand returns the platform's "open this URL" handler
func defaultCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	default:
		return "xdg-open", []string{url}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap the child without blocking the caller
	go cmd.Wait()
	return nil
}
