package tui

import (
	"testing"

	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/domain"
	"github.com/stretchr/testify/assert"
)

func photoIDs(records []domain.Photo) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func withIDs(ids ...string) []domain.Photo {
	out := make([]domain.Photo, len(ids))
	for i, id := range ids {
		out[i] = domain.Photo{ID: id}
	}
	return out
}

func TestPagerPaging(t *testing.T) {
	p := NewPager("")
	assert.Equal(t, config.PaginationReplace, p.Mode)
	assert.Equal(t, 1, p.Page)

	assert.False(t, p.Prev(), "page never drops below 1")
	assert.Equal(t, 1, p.Page)

	assert.Equal(t, 2, p.Next())
	assert.Equal(t, 3, p.Next())
	assert.True(t, p.Prev())
	assert.Equal(t, 2, p.Page)

	p.Reset()
	assert.Equal(t, 1, p.Page)
}

func TestPagerToggleMode(t *testing.T) {
	p := NewPager(config.PaginationReplace)
	assert.Equal(t, config.PaginationAppend, p.ToggleMode())
	p.Next()
	assert.False(t, p.Prev(), "append mode keeps earlier pages on screen")
	assert.Equal(t, config.PaginationReplace, p.ToggleMode())
	assert.True(t, p.Prev())
}

func TestPagerComposeReplace(t *testing.T) {
	p := NewPager(config.PaginationReplace)
	p.Next()
	got := p.Compose(withIDs("1", "2"), domain.LoadResult{Records: withIDs("3", "4"), Source: domain.SourceNetwork})
	assert.Equal(t, []string{"3", "4"}, photoIDs(got))
}

func TestPagerComposeAppend(t *testing.T) {
	p := NewPager(config.PaginationAppend)

	first := p.Compose(nil, domain.LoadResult{Records: withIDs("1", "2"), Source: domain.SourceNetwork})
	assert.Equal(t, []string{"1", "2"}, photoIDs(first))

	p.Next()
	second := p.Compose(first, domain.LoadResult{Records: withIDs("2", "3"), Source: domain.SourceNetwork})
	assert.Equal(t, []string{"1", "2", "3"}, photoIDs(second))

	// a cached fallback is the whole snapshot, never appended
	stale := p.Compose(second, domain.LoadResult{Records: withIDs("9"), Source: domain.SourceCache, Stale: true})
	assert.Equal(t, []string{"9"}, photoIDs(stale))

	// an empty result leaves what is already shown
	empty := p.Compose(second, domain.EmptyResult())
	assert.Equal(t, []string{"1", "2", "3"}, photoIDs(empty))
}
