package tui

import "github.com/mmcdole/galleria/internal/tui/components"

// Vertical chrome: header, banner and footer lines
const (
	HeaderLines = 1
	BannerLines = 1
	FooterLines = 1

	// search input plus its suggestion line
	SearchBarLines = 2

	// drawer border and separator
	DrawerChrome = 3
)

// contentWidth returns the width left for the active screen
func (m Model) contentWidth() int {
	w := m.Width
	if m.Drawer.IsOpen() {
		w -= components.DrawerWidth + DrawerChrome
	}
	if w < 20 {
		w = 20
	}
	return w
}

// updateLayout resizes components to the window
func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}

	width := m.contentWidth()
	gridHeight := m.Height - HeaderLines - BannerLines - FooterLines

	m.home.grid.SetSize(width, gridHeight)
	m.search.grid.SetSize(width, gridHeight-SearchBarLines)
	m.SearchBar.SetWidth(width)
	m.Drawer.SetHeight(m.Height)
}
