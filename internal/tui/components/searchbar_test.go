package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func prefixSuggester(terms ...string) Suggester {
	return func(query string) []string {
		var out []string
		for _, t := range terms {
			if strings.HasPrefix(t, query) {
				out = append(out, t)
			}
		}
		return out
	}
}

func TestSearchBarTabCompletes(t *testing.T) {
	s := NewSearchBar(prefixSuggester("cathedral", "cat", "dog"))
	s.Focus()

	for _, r := range "ca" {
		s, _ = s.Update(keyRunes(string(r)))
	}
	assert.Equal(t, []string{"cathedral", "cat"}, s.Suggestions())

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "cathedral", s.Value())
	// the exact term is no longer offered
	assert.NotContains(t, s.Suggestions(), "cathedral")
}

func TestSearchBarWithoutSuggester(t *testing.T) {
	s := NewSearchBar(nil)
	s.Focus()
	s, _ = s.Update(keyRunes("x"))
	assert.False(t, s.Complete())
	assert.Equal(t, "x", s.Value())
}

func TestSearchBarIgnoresInputWhenBlurred(t *testing.T) {
	s := NewSearchBar(nil)
	s, _ = s.Update(keyRunes("x"))
	assert.Equal(t, "", s.Value())
}

func TestDrawerSelect(t *testing.T) {
	d := NewDrawer()
	assert.False(t, d.IsOpen())
	assert.Empty(t, d.View())

	d.Toggle()
	d.SetHeight(20)
	assert.True(t, d.IsOpen())
	assert.Contains(t, d.View(), "Search")

	d.Select(MenuQuit)
	assert.Equal(t, MenuQuit, d.Selected().Action)

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, MenuWelcome, d.Selected().Action)

	d.Close()
	assert.False(t, d.IsOpen())
}
