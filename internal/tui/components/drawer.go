package components

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/galleria/internal/tui/styles"
)

// MenuAction identifies a drawer entry
type MenuAction int

const (
	MenuHome MenuAction = iota
	MenuSearch
	MenuWelcome
	MenuQuit
)

// MenuItem implements list.Item for drawer entries
type MenuItem struct {
	Label  string
	Action MenuAction
}

func (i MenuItem) FilterValue() string { return i.Label }
func (i MenuItem) Title() string       { return i.Label }
func (i MenuItem) Description() string { return "" }

// DrawerWidth is the fixed width of the slide-out menu
const DrawerWidth = 22

// Drawer is the slide-out navigation menu
type Drawer struct {
	list   list.Model
	open   bool
	height int
}

// NewDrawer creates the drawer with its fixed entries
func NewDrawer() Drawer {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = styles.SelectedItemStyle
	delegate.Styles.NormalTitle = styles.NormalItemStyle

	items := []list.Item{
		MenuItem{Label: "Home", Action: MenuHome},
		MenuItem{Label: "Search", Action: MenuSearch},
		MenuItem{Label: "Welcome", Action: MenuWelcome},
		MenuItem{Label: "Quit", Action: MenuQuit},
	}

	l := list.New(items, delegate, DrawerWidth, len(items)+4)
	l.Title = "Menu"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.Title = styles.DrawerTitleStyle

	return Drawer{list: l}
}

// Toggle opens or closes the drawer
func (d *Drawer) Toggle() {
	d.open = !d.open
}

// Close hides the drawer
func (d *Drawer) Close() {
	d.open = false
}

// IsOpen reports whether the drawer is visible
func (d Drawer) IsOpen() bool {
	return d.open
}

// SetHeight updates the drawer height
func (d *Drawer) SetHeight(height int) {
	d.height = height
	d.list.SetSize(DrawerWidth, max(height-2, 6))
}

// Select moves the cursor to the entry with the given action
func (d *Drawer) Select(action MenuAction) {
	for i, item := range d.list.Items() {
		if mi, ok := item.(MenuItem); ok && mi.Action == action {
			d.list.Select(i)
			return
		}
	}
}

// Selected returns the highlighted entry
func (d Drawer) Selected() MenuItem {
	if item, ok := d.list.SelectedItem().(MenuItem); ok {
		return item
	}
	return MenuItem{Label: "Home", Action: MenuHome}
}

// Update handles navigation keys while open
func (d Drawer) Update(msg tea.Msg) (Drawer, tea.Cmd) {
	if !d.open {
		return d, nil
	}
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View renders the drawer, or nothing when closed
func (d Drawer) View() string {
	if !d.open {
		return ""
	}
	return styles.DrawerStyle.
		Height(max(d.height-2, 0)).
		Render(lipgloss.NewStyle().Width(DrawerWidth).Render(d.list.View()))
}
