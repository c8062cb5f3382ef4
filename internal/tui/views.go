package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/galleria/internal/tui/styles"
)

// Screen copy
const (
	WelcomeTitle    = "Welcome to Image Gallery"
	WelcomeSubtitle = "Explore stunning images curated just for you"
	WelcomeButton   = "Press Enter to explore"
	HomeHeader      = "Image Gallery App"
	SearchHeader    = "Search Images"
	StaleBanner     = "You are viewing cached images"
	ErrorBanner     = "Error loading images. Please try again."
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	var content string
	switch m.Screen {
	case ScreenHome:
		content = m.renderGridScreen(HomeHeader, m.home, "")
	case ScreenSearch:
		content = m.renderGridScreen(SearchHeader, m.search, m.SearchBar.View())
	default:
		content = m.renderWelcome()
	}

	if m.Drawer.IsOpen() {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.Drawer.View(), " ", content)
	}
	return content
}

func (m Model) renderWelcome() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.WelcomeTitleStyle.Render(WelcomeTitle),
		styles.SubtitleStyle.Render(WelcomeSubtitle),
		styles.WelcomeButtonStyle.Render(WelcomeButton),
	)
	width := m.contentWidth()
	screen := lipgloss.Place(width, m.Height-FooterLines, lipgloss.Center, lipgloss.Center, body)
	return screen + "\n" + m.renderFooter(Keys.Enter, Keys.Menu, Keys.Quit)
}

func (m Model) renderGridScreen(title string, p *pane, searchBar string) string {
	width := m.contentWidth()

	var sections []string
	sections = append(sections, styles.HeaderStyle.Width(width).Render(title))
	if searchBar != "" {
		bar := searchBar
		if !strings.Contains(bar, "\n") {
			bar += "\n"
		}
		sections = append(sections, bar)
	}
	sections = append(sections, m.renderBanner(p, width))
	sections = append(sections, p.grid.View())

	body := strings.Join(sections, "\n")
	used := lipgloss.Height(body)
	if pad := m.Height - FooterLines - used; pad > 0 {
		body += strings.Repeat("\n", pad)
	}

	return body + "\n" + m.renderFooter(
		Keys.Enter, Keys.NextPage, Keys.PrevPage, Keys.TogglePaging,
		Keys.Filter, Keys.Retry, Keys.Menu, Keys.Quit,
	)
}

// renderBanner shows loading, stale and error states, else page info
func (m Model) renderBanner(p *pane, width int) string {
	switch {
	case m.Loading && m.pane(m.loadingScreen) == p:
		return m.Spinner.View() + " " + styles.DimStyle.Render("Loading "+p.req.String()+"...")
	case p.failed:
		return styles.ErrorBannerStyle.Render(ErrorBanner) + styles.DimStyle.Render(" r to retry")
	case p.stale:
		return styles.StaleBannerStyle.Render(StaleBanner)
	case !p.loaded:
		if p.req.Kind == "" && m.Screen == ScreenSearch {
			return styles.DimStyle.Render("Type a term and press enter")
		}
		return " "
	}

	info := fmt.Sprintf("Page %d", p.pager.Page)
	if p.info.Pages > 0 {
		info = fmt.Sprintf("Page %d of %d", p.pager.Page, p.info.Pages)
	}
	info += fmt.Sprintf(" · %d photos · %s", len(p.grid.Photos()), p.pager.Mode)
	return styles.DimStyle.Render(styles.Truncate(info, width))
}

// renderFooter shows the status message or key help
func (m Model) renderFooter(bindings ...key.Binding) string {
	width := m.contentWidth()
	if m.StatusMsg != "" {
		style := styles.SubtitleStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		return style.Render(styles.Truncate(m.StatusMsg, width))
	}

	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
