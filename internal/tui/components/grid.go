package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/galleria/internal/domain"
	"github.com/mmcdole/galleria/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the photo grid
const (
	// each card: border top+bottom plus a title and a URL line
	CellHeight = 4

	// border and padding inside a card (left+right)
	CellFrameWidth = 4

	// gap between cards on a row
	CellGap = 1

	// filter bar and scroll indicator
	FooterLines = 2
)

// photoSource implements sahilm/fuzzy.Source over photo titles
type photoSource struct {
	titles []string
}

func (s photoSource) String(i int) string { return s.titles[i] }
func (s photoSource) Len() int            { return len(s.titles) }

// Grid shows photos as cards laid out in columns
type Grid struct {
	photos  []domain.Photo
	columns int

	// Selection
	cursor    int
	rowOffset int

	// Dimensions
	width   int
	height  int
	focused bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into photos
}

// NewGrid creates a grid with the given number of columns
func NewGrid(columns int) Grid {
	if columns < 1 {
		columns = 1
	}
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return Grid{
		columns:     columns,
		filterInput: ti,
	}
}

// SetPhotos replaces the content. The cursor stays on the same photo ID
// when it is still present.
func (g *Grid) SetPhotos(photos []domain.Photo) {
	var selectedID string
	if p := g.Selected(); p != nil {
		selectedID = p.ID
	}

	g.photos = photos
	g.cursor = 0
	g.rowOffset = 0
	if g.filterActive {
		g.applyFilter()
	}

	if selectedID != "" {
		for i := 0; i < g.itemCount(); i++ {
			if g.photos[g.mapIndex(i)].ID == selectedID {
				g.cursor = i
				break
			}
		}
	}
	g.ensureVisible()
}

// Photos returns the unfiltered content
func (g Grid) Photos() []domain.Photo {
	return g.photos
}

// Visible returns the photos that pass the current filter, in display order
func (g Grid) Visible() []domain.Photo {
	count := g.itemCount()
	out := make([]domain.Photo, count)
	for i := 0; i < count; i++ {
		out[i] = g.photos[g.mapIndex(i)]
	}
	return out
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// Cursor returns the current cursor position
func (g Grid) Cursor() int {
	return g.cursor
}

// Selected returns the photo under the cursor
func (g Grid) Selected() *domain.Photo {
	count := g.itemCount()
	if count == 0 || g.cursor >= count {
		return nil
	}
	p := g.photos[g.mapIndex(g.cursor)]
	return &p
}

// IsEmpty returns true if no photo is visible
func (g Grid) IsEmpty() bool {
	return g.itemCount() == 0
}

// visibleRows returns how many card rows fit
func (g Grid) visibleRows() int {
	rows := (g.height - FooterLines) / CellHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *Grid) ensureVisible() {
	row := g.cursor / g.columns
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if rows := g.visibleRows(); row >= g.rowOffset+rows {
		g.rowOffset = row - rows + 1
	}
}

func (g *Grid) moveTo(pos int) {
	count := g.itemCount()
	if count == 0 {
		g.cursor = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > count-1 {
		pos = count - 1
	}
	g.cursor = pos
	g.ensureVisible()
}

// ToggleFilter activates the filter input
func (g *Grid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
}

// IsFiltering returns true if filter mode is active
func (g Grid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if the filter input has focus
func (g Grid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all photos
func (g *Grid) ClearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.filteredIdx = nil
	g.filterInput.SetValue("")
	g.filterInput.Blur()
}

// SetFilter applies query as if it had been typed
func (g *Grid) SetFilter(query string) {
	g.filterActive = true
	g.filterInput.SetValue(query)
	g.applyFilter()
}

// applyFilter narrows the grid to photos whose title fuzzy-matches the query
func (g *Grid) applyFilter() {
	query := g.filterInput.Value()
	g.filterQuery = query

	if query == "" {
		g.filteredIdx = nil
		return
	}

	src := photoSource{titles: make([]string, len(g.photos))}
	for i, p := range g.photos {
		src.titles[i] = strings.ToLower(p.DisplayTitle())
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), src)
	g.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		g.filteredIdx[i] = match.Index
	}

	g.cursor = 0
	g.rowOffset = 0
}

func (g Grid) itemCount() int {
	if g.filteredIdx != nil {
		return len(g.filteredIdx)
	}
	return len(g.photos)
}

func (g Grid) mapIndex(i int) int {
	if g.filteredIdx != nil && i < len(g.filteredIdx) {
		return g.filteredIdx[i]
	}
	return i
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	// Typing into the filter
	if g.filterActive && g.filterInput.Focused() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, GridKeys.Escape):
				g.ClearFilter()
				return g, nil
			case key.Matches(msg, GridKeys.Enter):
				g.filterInput.Blur()
				return g, nil
			case key.Matches(msg, GridKeys.Erase):
				if g.filterInput.Value() == "" {
					g.ClearFilter()
					return g, nil
				}
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd
	}

	if g.filterActive {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, GridKeys.Escape):
				g.ClearFilter()
				return g, nil
			case key.Matches(msg, GridKeys.Filter):
				g.filterInput.Focus()
				return g, nil
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || g.itemCount() == 0 {
		return g, nil
	}

	switch {
	case key.Matches(keyMsg, GridKeys.Right):
		g.moveTo(g.cursor + 1)
	case key.Matches(keyMsg, GridKeys.Left):
		g.moveTo(g.cursor - 1)
	case key.Matches(keyMsg, GridKeys.Down):
		if g.cursor+g.columns < g.itemCount() {
			g.moveTo(g.cursor + g.columns)
		}
	case key.Matches(keyMsg, GridKeys.Up):
		if g.cursor-g.columns >= 0 {
			g.moveTo(g.cursor - g.columns)
		}
	case key.Matches(keyMsg, GridKeys.Home):
		g.moveTo(0)
	case key.Matches(keyMsg, GridKeys.End):
		g.moveTo(g.itemCount() - 1)
	case key.Matches(keyMsg, GridKeys.HalfDown):
		g.moveTo(g.cursor + g.visibleRows()*g.columns)
	case key.Matches(keyMsg, GridKeys.HalfUp):
		g.moveTo(g.cursor - g.visibleRows()*g.columns)
	}

	return g, nil
}

// View renders the component
func (g Grid) View() string {
	cellWidth := g.cellWidth()
	count := g.itemCount()

	var lines []string
	if count == 0 {
		msg := "No photos"
		if g.filterActive && g.filterQuery != "" {
			msg = "No matches"
		}
		lines = append(lines, styles.DimStyle.Render(msg))
	} else {
		firstRow := g.rowOffset
		lastRow := firstRow + g.visibleRows()
		totalRows := (count + g.columns - 1) / g.columns
		if lastRow > totalRows {
			lastRow = totalRows
		}

		for row := firstRow; row < lastRow; row++ {
			var cells []string
			for col := 0; col < g.columns; col++ {
				i := row*g.columns + col
				if i >= count {
					break
				}
				if col > 0 {
					cells = append(cells, strings.Repeat(" ", CellGap))
				}
				cells = append(cells, g.renderCell(g.photos[g.mapIndex(i)], i == g.cursor, cellWidth))
			}
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}

		footer := " "
		if lastRow < totalRows {
			footer = styles.DimStyle.Render(fmt.Sprintf("↓ %d more", count-lastRow*g.columns))
		}
		lines = append(lines, footer)
	}

	if g.filterActive {
		lines = append(lines, g.renderFilterBar())
	}

	return strings.Join(lines, "\n")
}

// cellWidth returns the inner text width of one card
func (g Grid) cellWidth() int {
	w := (g.width-(g.columns-1)*CellGap)/g.columns - CellFrameWidth
	if w < 8 {
		w = 8
	}
	return w
}

func (g Grid) renderCell(p domain.Photo, selected bool, width int) string {
	style := styles.GridCellStyle
	titleStyle := styles.SubtitleStyle
	if selected && g.focused {
		style = styles.GridCellSelectedStyle
		titleStyle = styles.TitleStyle
	}

	title := titleStyle.Render(styles.Pad(styles.Truncate(p.DisplayTitle(), width), width))
	link := styles.LinkStyle.Render(styles.Pad(styles.Truncate(p.ImageURL, width), width))
	return style.Render(title + "\n" + link)
}

func (g Grid) renderFilterBar() string {
	input := g.filterInput.View()
	if g.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", g.itemCount(), len(g.photos)))
}
