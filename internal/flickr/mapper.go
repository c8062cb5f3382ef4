package flickr

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/galleria/internal/domain"
)

// MapPhotos validates the flattened photo list.
// Every photo needs an id; a response with an id-less photo is rejected.
// Duplicate ids keep their first occurrence so ids stay usable as list keys.
func MapPhotos(items []domain.Photo, logger *slog.Logger) ([]domain.Photo, error) {
	photos := make([]domain.Photo, 0, len(items))
	seen := make(map[string]bool, len(items))

	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("photo at index %d has no id", i)
		}
		if seen[item.ID] {
			logger.Warn("dropping duplicate photo id", "id", item.ID, "index", i)
			continue
		}
		seen[item.ID] = true
		photos = append(photos, item)
	}

	return photos, nil
}

// MapPageInfo converts the envelope counters
func MapPageInfo(p *photosPage) domain.PageInfo {
	return domain.PageInfo{
		Page:    int(p.Page),
		Pages:   int(p.Pages),
		PerPage: int(p.PerPage),
		Total:   int(p.Total),
	}
}
