package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/galleria/internal/tui/styles"
)

// Suggester returns completions for a partial search term, best first
type Suggester func(query string) []string

// SearchBar is the search text input with history suggestions
type SearchBar struct {
	input       textinput.Model
	suggest     Suggester
	suggestions []string
}

// NewSearchBar creates a search bar; suggest may be nil
func NewSearchBar(suggest Suggester) SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search photos..."
	ti.Prompt = "Search: "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.CharLimit = 100

	return SearchBar{input: ti, suggest: suggest}
}

// Focus gives the input keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	s.refresh()
	return s.input.Focus()
}

// Blur releases keyboard focus
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the trimmed term
func (s SearchBar) Value() string {
	return strings.TrimSpace(s.input.Value())
}

// SetValue replaces the input text
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
	s.refresh()
}

// SetWidth sets the visible input width
func (s *SearchBar) SetWidth(w int) {
	s.input.Width = max(w-len(s.input.Prompt)-2, 10)
}

// Suggestions returns the current completions
func (s SearchBar) Suggestions() []string {
	return s.suggestions
}

// Complete replaces the input with the best suggestion, if any
func (s *SearchBar) Complete() bool {
	if len(s.suggestions) == 0 {
		return false
	}
	s.SetValue(s.suggestions[0])
	return true
}

func (s *SearchBar) refresh() {
	if s.suggest == nil {
		s.suggestions = nil
		return
	}
	var out []string
	for _, term := range s.suggest(s.Value()) {
		if !strings.EqualFold(term, s.Value()) {
			out = append(out, term)
		}
	}
	s.suggestions = out
}

// Update routes input while focused. Tab completes the best suggestion.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.input.Focused() {
		return s, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, SearchBarKeys.Complete) {
		s.Complete()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refresh()
	return s, cmd
}

// View renders the input and up to three suggestions
func (s SearchBar) View() string {
	view := s.input.View()
	if s.input.Focused() && len(s.suggestions) > 0 {
		shown := s.suggestions
		if len(shown) > 3 {
			shown = shown[:3]
		}
		view += "\n" + styles.SuggestionStyle.Render("  tab: "+strings.Join(shown, " · "))
	}
	return view
}
