package download

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/mmcdole/galleria/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ImageFetcher returns the bytes behind an image URL
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Downloader saves photo renditions to a directory
type Downloader struct {
	fetcher     ImageFetcher
	concurrency int
	logger      *slog.Logger
}

// NewDownloader creates a downloader running at most concurrency fetches at once
func NewDownloader(fetcher ImageFetcher, concurrency int, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = slog.Default()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Downloader{fetcher: fetcher, concurrency: concurrency, logger: logger}
}

// Save writes each photo to dir as <id>.jpg and returns how many were written.
// Photos without an ImageURL are skipped. The first failure cancels the rest.
func (d *Downloader) Save(ctx context.Context, photos []domain.Photo, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create download directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	var saved atomic.Int64
	for _, p := range photos {
		if p.ImageURL == "" {
			d.logger.Warn("skipping photo without image url", "id", p.ID)
			continue
		}
		p := p
		g.Go(func() error {
			data, err := d.fetcher.FetchImage(ctx, p.ImageURL)
			if err != nil {
				return fmt.Errorf("photo %s: %w", p.ID, err)
			}
			path := filepath.Join(dir, FileName(p))
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("photo %s: %w", p.ID, err)
			}
			d.logger.Debug("saved photo", "id", p.ID, "path", path, "bytes", len(data))
			saved.Add(1)
			return nil
		})
	}

	err := g.Wait()
	return int(saved.Load()), err
}

// FileName returns the file name used for a photo. Path separators in the
// id are replaced so the file always lands inside the target directory.
func FileName(p domain.Photo) string {
	id := strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(p.ID)
	return id + ".jpg"
}
