package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"valuetracker/internal/config"
	"valuetracker/internal/domain"
	"valuetracker/internal/eventbus"
	"valuetracker/internal/logic"
	"valuetracker/internal/ui/input"
	inputtypes "valuetracker/internal/ui/input/types"
	"valuetracker/internal/ui/views"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second

// Options configures a Model
type Options struct {
	Config *config.Config
	Items  []domain.Item
	Sort   domain.SortState
	Search string
	Bus    eventbus.EventBus // optional
	Logger zerolog.Logger
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger zerolog.Logger

	items   *logic.ItemTable
	grid    table.Model
	focused domain.SortKey // header toggled by Enter

	width  int
	height int

	help       help.Model
	keys       keyMap
	searchKeys searchKeyMap

	statusMessage string
	statusIsError bool
	statusID      int

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	styles := views.NewStyles()
	items := logic.NewItemTable(opts.Items,
		logic.WithSortState(opts.Sort),
		logic.WithSearch(opts.Search),
	)

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		logger:       opts.Logger,
		items:        items,
		focused:      opts.Sort.Key,
		help:         help.New(),
		keys:         newKeyMap(),
		searchKeys:   newSearchKeyMap(),
		renderer:     views.NewRenderer(styles),
		helpRenderer: NewHelpRenderer(cfg.UISettings.Noun),
		inputHandler: input.New(cfg.UISettings.Placeholder),
	}

	m.grid = table.New(
		table.WithFocused(true),
		table.WithStyles(styles.Table),
		table.WithHeight(views.TableHeight(24)),
	)
	m.inputHandler.SetText(opts.Search)
	m.refreshTable()

	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("help pager failed")
			return m, m.setStatus(fmt.Sprintf("Help unavailable: %v", msg.err), true)
		}
		return m, nil

	case statusClearMsg:
		if msg.id == m.statusID {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction applies a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleSortAction:
		m.toggleSort(a.Key)

	case inputtypes.FocusColumnAction:
		m.focused = a.Key
		m.refreshColumns()

	case inputtypes.UpdateTextAction:
		m.setSearch(a.Text)

	case inputtypes.SubmitTextAction:
		m.setSearch(a.Text)

	case inputtypes.CancelTextAction, inputtypes.ClearSearchAction:
		m.inputHandler.SetText("")
		m.setSearch("")

	case inputtypes.ToggleHelpAction:
		pager := newHelpPager(m.helpRenderer.RenderHelpContent())
		return tea.Exec(pager, func(err error) tea.Msg {
			return helpPagerMsg{err: err}
		})
	}

	return nil
}

func (m *Model) toggleSort(key domain.SortKey) {
	old := m.items.SortState()
	state := m.items.Toggle(key)
	m.focused = key

	if m.bus != nil {
		m.bus.Publish(domain.SortChangedEvent{Old: old, New: state})
	}

	m.refreshTable()
	m.grid.GotoTop()
}

func (m *Model) setSearch(query string) {
	if query == m.items.Search() {
		return
	}
	m.items.SetSearch(query)

	if m.bus != nil {
		m.bus.Publish(domain.SearchChangedEvent{Query: query, Matches: m.items.Count()})
	}

	m.refreshTable()
	m.grid.GotoTop()
}

func (m *Model) navigate(direction string) {
	if m.items.Count() == 0 {
		return
	}
	switch direction {
	case "up":
		m.grid.MoveUp(1)
	case "down":
		m.grid.MoveDown(1)
	case "pageup":
		m.grid.MoveUp(m.grid.Height())
	case "pagedown":
		m.grid.MoveDown(m.grid.Height())
	case "home":
		m.grid.GotoTop()
	case "end":
		m.grid.GotoBottom()
	}
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusID++
	id := m.statusID
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

func (m *Model) resize() {
	m.grid.SetHeight(views.TableHeight(m.height))
	tableWidth := max(m.renderer.TableWidth(m.width), 0)
	m.grid.SetWidth(tableWidth)
	// Search box border and padding take four columns
	m.inputHandler.SetWidth(max(tableWidth-4, 0))
	m.refreshColumns()
}

// refreshColumns rebuilds the headers so the sort arrows track the state
func (m *Model) refreshColumns() {
	width := m.renderer.TableWidth(m.width)
	if width <= 0 {
		width = 80
	}
	settings := m.config.UISettings
	m.grid.SetColumns(views.Columns(settings.NameHeader, settings.ValueHeader, m.items.SortState(), m.focused, width))
}

// refreshTable pushes the display sequence into the table widget
func (m *Model) refreshTable() {
	m.refreshColumns()
	m.grid.SetRows(views.Rows(m.items.Display()))
	if count := m.items.Count(); count > 0 && (m.grid.Cursor() < 0 || m.grid.Cursor() >= count) {
		m.grid.SetCursor(min(max(m.grid.Cursor(), 0), count-1))
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Query:   m.items.Search(),
		Sort:    m.items.SortState(),
		Focused: m.focused,
	}
}

// View renders the UI
func (m *Model) View() string {
	searching := m.inputHandler.CurrentMode() == inputtypes.ModeSearch

	helpView := m.help.View(m.keys)
	if searching {
		helpView = m.help.View(m.searchKeys)
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.Title,
		SearchInput:   m.inputHandler.TextInput().View(),
		Searching:     searching,
		Table:         m.grid.View(),
		Count:         m.items.Count(),
		Noun:          m.config.UISettings.Noun,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		HelpView:      helpView,
	})
}

// DisplayedItems returns the current display sequence
func (m *Model) DisplayedItems() []domain.Item {
	return m.items.Display()
}

// SortState returns the active sort key and direction
func (m *Model) SortState() domain.SortState {
	return m.items.SortState()
}

// SearchQuery returns the active search text
func (m *Model) SearchQuery() string {
	return m.items.Search()
}

// FocusedColumn returns the header Enter toggles
func (m *Model) FocusedColumn() domain.SortKey {
	return m.focused
}

// Cursor returns the selected row index
func (m *Model) Cursor() int {
	if m.items.Count() == 0 {
		return 0
	}
	return m.grid.Cursor()
}

// Searching reports whether the search field has focus
func (m *Model) Searching() bool {
	return m.inputHandler.CurrentMode() == inputtypes.ModeSearch
}
