package viewer

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mmcdole/galleria/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	args []string
	err  error
}

func newTestLauncher(cfg config.ViewerConfig, goos string, inPath map[string]bool) (*Launcher, *recorder) {
	rec := &recorder{}
	l := NewLauncher(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.goos = goos
	l.lookPath = func(name string) (string, error) {
		if inPath[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	l.start = func(name string, args ...string) error {
		rec.name = name
		rec.args = args
		return rec.err
	}
	return l, rec
}

const photoURL = "https://live.staticflickr.com/65535/1_abc_m.jpg"

func TestOpenConfiguredViewer(t *testing.T) {
	l, rec := newTestLauncher(config.ViewerConfig{Command: "feh", Args: []string{"--scale-down"}}, "linux", map[string]bool{"feh": true})

	require.NoError(t, l.Open(photoURL))
	assert.Equal(t, "feh", rec.name)
	assert.Equal(t, []string{"--scale-down", photoURL}, rec.args)
}

func TestOpenConfiguredDarwinApp(t *testing.T) {
	l, rec := newTestLauncher(config.ViewerConfig{Command: "Preview", Args: []string{"-x"}}, "darwin", nil)

	require.NoError(t, l.Open(photoURL))
	assert.Equal(t, "open", rec.name)
	assert.Equal(t, []string{"-a", "Preview", "--args", "-x", photoURL}, rec.args)
}

func TestOpenDetectsViewer(t *testing.T) {
	l, rec := newTestLauncher(config.ViewerConfig{}, "linux", map[string]bool{"feh": true})

	require.NoError(t, l.Open(photoURL))
	assert.Equal(t, "feh", rec.name)
	assert.Equal(t, []string{photoURL}, rec.args)
}

func TestOpenSystemDefault(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"linux", "xdg-open", []string{photoURL}},
		{"darwin", "open", []string{photoURL}},
		{"windows", "cmd", []string{"/c", "start", "", photoURL}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l, rec := newTestLauncher(config.ViewerConfig{}, tt.goos, nil)
			require.NoError(t, l.Open(photoURL))
			assert.Equal(t, tt.name, rec.name)
			assert.Equal(t, tt.args, rec.args)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	l, rec := newTestLauncher(config.ViewerConfig{Command: "missing-viewer"}, "linux", nil)
	assert.ErrorIs(t, l.Open(""), ErrNoURL)

	rec.err = errors.New("exec: not found")
	err := l.Open(photoURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-viewer")
}
