package gallery

import "github.com/mmcdole/galleria/internal/domain"

// Snapshot returns the cached records without touching the network.
// A missing or unreadable snapshot reports false.
func (l *Loader) Snapshot() ([]domain.Photo, bool) {
	data, ok, err := l.store.Get(SnapshotKey)
	if err != nil {
		l.logger.Error("failed to read snapshot", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	photos, err := domain.DecodePhotos(data)
	if err != nil {
		l.logger.Error("failed to decode snapshot", "error", err, "bytes", len(data))
		return nil, false
	}
	return photos, true
}
