package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	FlickrPink = lipgloss.Color("#FF0084")
	FlickrBlue = lipgloss.Color("#0063DC")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Amber      = lipgloss.Color("#F59E0B")
	Red        = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FlickrPink)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(FlickrPink)

	LinkStyle = lipgloss.NewStyle().
			Foreground(FlickrBlue)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)
)

// Header bar
var HeaderStyle = lipgloss.NewStyle().
	Foreground(White).
	Background(FlickrBlue).
	Bold(true).
	Padding(0, 1)

// Welcome screen
var (
	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(FlickrPink).
				Bold(true).
				MarginBottom(1)

	WelcomeButtonStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(FlickrBlue).
				Padding(0, 3).
				MarginTop(2)
)

// Banners
var (
	StaleBannerStyle = lipgloss.NewStyle().
				Foreground(SlateDark).
				Background(Amber).
				Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Red).
				Padding(0, 1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(FlickrPink)
)

// Grid cell styles
var (
	GridCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	GridCellSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FlickrPink).
				Padding(0, 1)
)

// Drawer
var (
	DrawerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(SlateLight).
			Padding(1, 1)

	DrawerTitleStyle = lipgloss.NewStyle().
				Foreground(FlickrPink).
				Bold(true).
				Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Filter and search input styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(FlickrPink)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(FlickrPink).
				Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Italic(true)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(FlickrPink)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Truncate shortens s to width cells, ending with an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Pad right-pads s with spaces to width cells
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
