package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/galleria/internal/domain"
	"github.com/mmcdole/galleria/internal/tui/components"
	"github.com/mmcdole/galleria/internal/tui/styles"
)

// Screen is one of the top-level views
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenHome
	ScreenSearch
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenSearch:
		return "search"
	default:
		return "welcome"
	}
}

// PhotoLoader is the fetch-cache-fallback loader the screens read from
type PhotoLoader interface {
	Load(ctx context.Context, req domain.Request) (domain.LoadResult, error)
	Snapshot() ([]domain.Photo, bool)
}

// Viewer opens an image URL outside the terminal
type Viewer interface {
	Open(url string) error
}

// SearchHistory records and suggests search terms
type SearchHistory interface {
	Record(term string) error
	Suggest(query string) []string
}

// Options holds UI settings from config
type Options struct {
	Columns    int
	Pagination string
}

// pane is the per-screen photo list state
type pane struct {
	grid   components.Grid
	pager  Pager
	req    domain.Request // last request issued, zero before the first
	info   domain.PageInfo
	loaded bool // a result has arrived
	stale  bool // showing the cached snapshot after a failed fetch
	failed bool // fetch failed and nothing was cached
}

func newPane(opts Options) *pane {
	return &pane{
		grid:  components.NewGrid(opts.Columns),
		pager: NewPager(opts.Pagination),
	}
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Screen Screen
	Ready  bool

	// Dependencies
	Loader  PhotoLoader
	Viewer  Viewer
	History SearchHistory

	// UI Components
	Drawer    components.Drawer
	SearchBar components.SearchBar
	Spinner   spinner.Model

	home   *pane
	search *pane

	// Dimensions
	Width  int
	Height int

	// UI state
	Loading     bool
	StatusMsg   string
	StatusIsErr bool

	// in-flight load
	requestID     int
	loadingScreen Screen
	cancel        context.CancelFunc
}

// NewModel creates a new application model
func NewModel(loader PhotoLoader, viewer Viewer, history SearchHistory, opts Options) Model {
	var suggest components.Suggester
	if history != nil {
		suggest = history.Suggest
	}
	return Model{
		Screen:    ScreenWelcome,
		Loader:    loader,
		Viewer:    viewer,
		History:   history,
		Drawer:    components.NewDrawer(),
		SearchBar: components.NewSearchBar(suggest),
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.SpinnerStyle),
		),
		home:   newPane(opts),
		search: newPane(opts),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case PhotosLoadedMsg:
		return m.handlePhotosLoaded(msg)

	case ViewerOpenedMsg:
		if msg.Err != nil {
			return m.setStatus(fmt.Sprintf("Could not open photo: %v", msg.Err), true)
		}
		return m.setStatus("Opened "+msg.Photo.DisplayTitle(), false)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handlePhotosLoaded(msg PhotosLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.RequestID != m.requestID {
		// superseded by a newer request
		return m, nil
	}
	m.Loading = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	if errors.Is(msg.Err, context.Canceled) {
		return m, nil
	}

	p := m.pane(msg.Screen)
	p.loaded = true
	p.stale = msg.Result.Stale
	p.failed = msg.Result.IsEmptyResult()
	p.info = msg.Result.Page
	p.grid.SetPhotos(p.pager.Compose(p.grid.Photos(), msg.Result))
	return m, nil
}

// startLoad cancels any in-flight load and issues req for screen
func (m *Model) startLoad(screen Screen, req domain.Request) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.requestID++
	m.Loading = true
	m.loadingScreen = screen

	p := m.pane(screen)
	p.req = req
	p.failed = false

	return tea.Batch(
		LoadPhotosCmd(ctx, m.Loader, screen, req, m.requestID),
		m.Spinner.Tick,
	)
}

// navigate switches screens, loading the feed on first visit to Home
func (m *Model) navigate(screen Screen) tea.Cmd {
	m.Drawer.Close()
	m.Screen = screen
	m.home.grid.SetFocused(screen == ScreenHome)
	m.search.grid.SetFocused(false)
	m.updateLayout()

	switch screen {
	case ScreenHome:
		if m.home.req.Kind == "" {
			if cached, ok := m.Loader.Snapshot(); ok {
				m.home.grid.SetPhotos(cached)
			}
			return m.startLoad(ScreenHome, domain.FeedRequest(m.home.pager.Page))
		}
	case ScreenSearch:
		return m.SearchBar.Focus()
	}
	return nil
}

// submitSearch starts a search for the term in the search bar
func (m *Model) submitSearch() tea.Cmd {
	term := m.SearchBar.Value()
	req := domain.SearchRequest(term)
	if err := req.Validate(); err != nil {
		m.StatusMsg = "Enter a search term"
		m.StatusIsErr = true
		return ClearStatusCmd(3 * time.Second)
	}

	m.SearchBar.Blur()
	m.search.grid.SetFocused(true)
	m.search.grid.ClearFilter()
	m.search.pager.Reset()
	req.Page = m.search.pager.Page

	return tea.Batch(
		m.startLoad(ScreenSearch, req),
		RecordSearchCmd(m.History, term),
	)
}

// reloadPage loads the pager's current page for the active screen
func (m *Model) reloadPage() tea.Cmd {
	p := m.current()
	if p == nil || p.req.Kind == "" {
		return nil
	}
	req := p.req
	req.Page = p.pager.Page
	return m.startLoad(m.Screen, req)
}

func (m *Model) pane(screen Screen) *pane {
	if screen == ScreenSearch {
		return m.search
	}
	return m.home
}

// current returns the pane for the active screen, nil on Welcome
func (m *Model) current() *pane {
	switch m.Screen {
	case ScreenHome:
		return m.home
	case ScreenSearch:
		return m.search
	default:
		return nil
	}
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(3 * time.Second)
}

// Shutdown cancels any in-flight load
func (m Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}
