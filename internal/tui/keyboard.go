package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		m.Shutdown()
		return m, tea.Quit
	}

	// Text inputs take every other key while they have focus
	if m.Screen == ScreenSearch && m.SearchBar.Focused() && !m.Drawer.IsOpen() {
		return m.handleSearchInput(msg)
	}
	if p := m.current(); p != nil && p.grid.IsFilterTyping() {
		var cmd tea.Cmd
		p.grid, cmd = p.grid.Update(msg)
		return m, cmd
	}

	if m.Drawer.IsOpen() {
		return m.handleDrawerKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		m.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, Keys.Menu):
		m.Drawer.Toggle()
		m.Drawer.Select(menuFor(m.Screen))
		m.updateLayout()
		return m, nil
	}

	if m.Screen == ScreenWelcome {
		if key.Matches(msg, Keys.Enter) {
			return m, m.navigate(ScreenHome)
		}
		return m, nil
	}

	return m.handleGridKey(msg)
}

// handleGridKey handles keys on the Home and Search screens
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.current()

	switch {
	case key.Matches(msg, Keys.Search) && m.Screen == ScreenSearch:
		m.search.grid.SetFocused(false)
		return m, m.SearchBar.Focus()

	case key.Matches(msg, Keys.Filter):
		p.grid.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if photo := p.grid.Selected(); photo != nil && m.Viewer != nil {
			return m, OpenViewerCmd(m.Viewer, *photo)
		}
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		if p.req.Kind == "" {
			return m, nil
		}
		p.pager.Next()
		return m, m.reloadPage()

	case key.Matches(msg, Keys.PrevPage):
		if p.req.Kind == "" {
			return m, nil
		}
		if !p.pager.Prev() {
			if p.pager.Mode == config.PaginationAppend {
				return m.setStatus("Earlier pages are already shown", false)
			}
			return m, nil
		}
		return m, m.reloadPage()

	case key.Matches(msg, Keys.TogglePaging):
		mode := p.pager.ToggleMode()
		return m.setStatus("Pagination: "+mode, false)

	case key.Matches(msg, Keys.Retry):
		return m, m.reloadPage()

	case key.Matches(msg, Keys.Back):
		if p.grid.IsFiltering() {
			p.grid.ClearFilter()
			return m, nil
		}
		if m.Screen == ScreenSearch {
			m.search.grid.SetFocused(false)
			return m, m.SearchBar.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	p.grid, cmd = p.grid.Update(msg)
	return m, cmd
}

// handleSearchInput routes keys to the focused search bar
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Enter):
		return m, m.submitSearch()

	case key.Matches(msg, Keys.Back):
		m.SearchBar.Blur()
		m.search.grid.SetFocused(true)
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	m.updateLayout()
	return m, cmd
}

// handleDrawerKey handles keys while the menu is open
func (m Model) handleDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back), key.Matches(msg, Keys.Menu):
		m.Drawer.Close()
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		switch m.Drawer.Selected().Action {
		case components.MenuHome:
			return m, m.navigate(ScreenHome)
		case components.MenuSearch:
			return m, m.navigate(ScreenSearch)
		case components.MenuWelcome:
			return m, m.navigate(ScreenWelcome)
		case components.MenuQuit:
			m.Shutdown()
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, Keys.Quit) && msg.String() == "q":
		m.Shutdown()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Drawer, cmd = m.Drawer.Update(msg)
	return m, cmd
}

func menuFor(s Screen) components.MenuAction {
	switch s {
	case ScreenHome:
		return components.MenuHome
	case ScreenSearch:
		return components.MenuSearch
	default:
		return components.MenuWelcome
	}
}
