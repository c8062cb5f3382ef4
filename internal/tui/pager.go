package tui

import (
	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/domain"
)

// Pager owns page numbering and how successive pages are combined
type Pager struct {
	Page int
	Mode string // config.PaginationReplace or config.PaginationAppend
}

// NewPager starts at page 1
func NewPager(mode string) Pager {
	if mode != config.PaginationAppend {
		mode = config.PaginationReplace
	}
	return Pager{Page: 1, Mode: mode}
}

// Next advances one page and returns it
func (p *Pager) Next() int {
	p.Page++
	return p.Page
}

// Prev goes back one page. It reports false at page 1, and in append
// mode where earlier pages are already on screen.
func (p *Pager) Prev() bool {
	if p.Mode == config.PaginationAppend || p.Page <= 1 {
		return false
	}
	p.Page--
	return true
}

// Reset returns to page 1
func (p *Pager) Reset() {
	p.Page = 1
}

// ToggleMode flips between replace and append and returns the new mode
func (p *Pager) ToggleMode() string {
	if p.Mode == config.PaginationAppend {
		p.Mode = config.PaginationReplace
	} else {
		p.Mode = config.PaginationAppend
	}
	return p.Mode
}

// Compose combines what is on screen with a new result.
// Replace mode, page 1 and cached results replace the list; append mode
// adds new records after existing ones, skipping IDs already shown.
func (p Pager) Compose(existing []domain.Photo, result domain.LoadResult) []domain.Photo {
	if p.Mode != config.PaginationAppend || p.Page <= 1 || result.Stale {
		return result.Records
	}

	seen := make(map[string]bool, len(existing))
	out := make([]domain.Photo, 0, len(existing)+len(result.Records))
	for _, photo := range existing {
		seen[photo.ID] = true
		out = append(out, photo)
	}
	for _, photo := range result.Records {
		if seen[photo.ID] {
			continue
		}
		seen[photo.ID] = true
		out = append(out, photo)
	}
	return out
}
