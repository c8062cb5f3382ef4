package gallery

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/mmcdole/galleria/internal/domain"
)

// SnapshotKey is the single store slot holding the last good result
const SnapshotKey = "cachedPhotos"

// Loader fetches photos, persists the last good result and falls back to it
// when the network fails. Safe for concurrent use.
type Loader struct {
	client domain.PhotoClient
	store  domain.Store
	logger *slog.Logger

	// generation guard: a load only writes the snapshot if no load that
	// started after it has written already
	seq         atomic.Uint64
	mu          sync.Mutex
	lastWritten uint64
}

// NewLoader creates a new loader.
func NewLoader(client domain.PhotoClient, store domain.Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{client: client, store: store, logger: logger}
}

// Load performs one fetch for req.
//
// On success the records replace the snapshot and come back with
// Source network. On failure the snapshot is returned flagged Stale, or
// domain.EmptyResult with an error wrapping domain.ErrEmptyResult when
// nothing was cached. A cancelled ctx yields ctx.Err() and no records.
func (l *Loader) Load(ctx context.Context, req domain.Request) (domain.LoadResult, error) {
	gen := l.seq.Add(1)

	photos, page, err := l.client.Fetch(ctx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			l.logger.Debug("load cancelled", "request", req.String())
			return domain.LoadResult{}, ctxErr
		}
		l.logger.Warn("fetch failed, falling back to snapshot", "kind", req.Kind, "page", req.PageOrDefault(), "error", err)
		return l.fallback(err)
	}

	if photos == nil {
		photos = []domain.Photo{}
	}
	l.writeSnapshot(gen, req, photos)

	l.logger.Debug("loaded photos", "request", req.String(), "count", len(photos))
	return domain.LoadResult{
		Records: photos,
		Source:  domain.SourceNetwork,
		Page:    page,
	}, nil
}

// writeSnapshot replaces the stored snapshot unless a newer load already did.
// Failures are logged only; the fetch itself succeeded.
func (l *Loader) writeSnapshot(gen uint64, req domain.Request, photos []domain.Photo) {
	data, err := domain.EncodePhotos(photos)
	if err != nil {
		l.logger.Error("failed to encode snapshot", "error", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen < l.lastWritten {
		l.logger.Debug("skipping snapshot from superseded load", "request", req.String(), "gen", gen, "lastWritten", l.lastWritten)
		return
	}
	if err := l.store.Set(SnapshotKey, data); err != nil {
		l.logger.Error("failed to save snapshot", "error", err)
		return
	}
	l.lastWritten = gen
}

func (l *Loader) fallback(fetchErr error) (domain.LoadResult, error) {
	photos, ok := l.Snapshot()
	if !ok {
		return domain.EmptyResult(), fmt.Errorf("%w: %w", domain.ErrEmptyResult, fetchErr)
	}
	return domain.LoadResult{
		Records: photos,
		Source:  domain.SourceCache,
		Stale:   true,
	}, nil
}
