package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/shreymonka/marine-migration/internal/config"
	"github.com/shreymonka/marine-migration/internal/database"
	"github.com/shreymonka/marine-migration/internal/models"
	"github.com/shreymonka/marine-migration/internal/onc"
	"github.com/shreymonka/marine-migration/internal/timerange"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading   AppState = iota // initial fetch in flight
	StateDashboard                 // main display
	StateError                     // unrecoverable error
)

// ActiveTab represents which dashboard tab is shown
type ActiveTab int

const (
	TabOcean ActiveTab = iota
	TabMigration
)

// prefTimeRange is the preference key for the last-used time window.
const prefTimeRange = "time_range"

// Options carries startup values resolved by the caller (device catalog
// lookups, stored preferences).
type Options struct {
	InitialSelector timerange.Selector
	DeviceName      string
	DBPath          string
}

// Model represents the application's state. The normalized table is the only
// cross-fetch session state; every successful fetch replaces it wholesale.
type Model struct {
	state     AppState
	activeTab ActiveTab
	width     int
	height    int
	err       error

	cfg    config.Config
	client onc.ScalarDataClient
	dbPath string

	// Time-window selection
	selectors []timerange.Selector
	selIdx    int

	// Data
	table       *models.Table
	lastFetched time.Time

	// Fetch status
	fetching      bool
	statusMsg     string
	statusIsError bool

	deviceName string
	spinner    spinner.Model
}

// NewModel creates a new application model
func NewModel(cfg config.Config, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	selectors := timerange.Selectors()
	selIdx := 0
	for i, sel := range selectors {
		if sel == opts.InitialSelector {
			selIdx = i
			break
		}
	}

	deviceName := opts.DeviceName
	if deviceName == "" {
		deviceName = cfg.DeviceCode
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = database.DBPath()
	}

	return Model{
		state:      StateLoading,
		activeTab:  TabOcean,
		cfg:        cfg,
		client:     onc.NewScalarClient(cfg.BaseURL, cfg.Token, cfg.RowLimit, cfg.FetchTimeout),
		dbPath:     dbPath,
		selectors:  selectors,
		selIdx:     selIdx,
		table:      models.NewTable(nil),
		deviceName: deviceName,
		spinner:    s,
	}
}

// Selector returns the currently selected time window.
func (m Model) Selector() timerange.Selector {
	return m.selectors[m.selIdx]
}

// Init fetches the initial window automatically, like the first page load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchData(m.client, m.cfg, m.Selector()))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case fetchSkippedMsg:
		// Unknown selector: nothing fetched, table untouched.
		m.fetching = false
		m.state = StateDashboard
		m.statusMsg = "Unrecognized time range; fetch skipped"
		m.statusIsError = false
		return m, nil

	case dataFetchedMsg:
		m.fetching = false
		m.state = StateDashboard

		if msg.err != nil {
			// Transport failure: warn, keep whatever table we had.
			m.statusMsg = fmt.Sprintf("Fetch failed: %v", msg.err)
			m.statusIsError = false
			return m, nil
		}
		if msg.result.Failed() {
			// Conversion failure: show the reason, table becomes empty.
			m.statusMsg = fmt.Sprintf("Error processing data: %v", msg.result.Err)
			m.statusIsError = true
			m.table = msg.result.Table
			return m, nil
		}

		m.table = msg.result.Table
		m.lastFetched = msg.fetchedAt
		m.statusMsg = ""
		m.statusIsError = false
		return m, rememberSelector(m.dbPath, m.Selector())

	case spinner.TickMsg:
		if !m.fetching && m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if m.activeTab == TabOcean {
			m.activeTab = TabMigration
		} else {
			m.activeTab = TabOcean
		}
		return m, nil

	case "left", "h":
		m.selIdx--
		if m.selIdx < 0 {
			m.selIdx = len(m.selectors) - 1
		}
		return m, nil

	case "right", "l":
		m.selIdx = (m.selIdx + 1) % len(m.selectors)
		return m, nil

	case "enter", "f":
		if m.fetching {
			return m, nil
		}
		m.fetching = true
		return m, tea.Batch(m.spinner.Tick, fetchData(m.client, m.cfg, m.Selector()))
	}

	return m, nil
}

// rememberSelector persists the selected window so the next session starts
// from it.
func rememberSelector(dbPath string, sel timerange.Selector) tea.Cmd {
	return func() tea.Msg {
		_ = database.SavePref(dbPath, prefTimeRange, string(sel))
		return nil
	}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateError:
		return m.viewError()
	case StateDashboard:
		return m.viewDashboard()
	}

	return ""
}

// viewLoading renders the initial fetch screen
func (m Model) viewLoading() string {
	title := titleStyle.Render("Holyrood Ocean Dashboard")
	status := mutedStyle.Render(fmt.Sprintf("Fetching %s of sensor data...", strings.ToLower(string(m.Selector()))))

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("Error")

	var errorText string
	if m.err != nil {
		errorText = m.err.Error()
	} else {
		errorText = "An unknown error occurred"
	}

	help := helpStyle.Render("Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorText, "", help)
}

// viewDashboard renders the main display
func (m Model) viewDashboard() string {
	var sections []string

	header := titleStyle.Render("Holyrood Ocean Dashboard")
	sections = append(sections, header)

	device := mutedStyle.Render(fmt.Sprintf("Instrument: %s", m.deviceName))
	sections = append(sections, device)

	sections = append(sections, m.renderRangeLine(), "")
	sections = append(sections, m.renderTabs(), "")

	switch m.activeTab {
	case TabOcean:
		sections = append(sections, m.renderOceanTab())
	case TabMigration:
		sections = append(sections, m.renderMigrationTab())
	}

	if m.statusMsg != "" {
		style := warningStyle
		if m.statusIsError {
			style = errorStyle
		}
		sections = append(sections, "", style.Render(m.statusMsg))
	}

	help := helpStyle.Render("Left/Right: Time range - Enter/F: Fetch - Tab: Switch view - Q: Quit")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRangeLine shows the selector plus fetch status.
func (m Model) renderRangeLine() string {
	rangeText := fmt.Sprintf("< %s >", m.Selector())

	var status string
	switch {
	case m.fetching:
		status = fmt.Sprintf("%s fetching...", m.spinner.View())
	case !m.lastFetched.IsZero():
		status = mutedStyle.Render(fmt.Sprintf("%s rows, updated %s",
			humanize.Comma(int64(m.table.Len())), humanize.Time(m.lastFetched)))
	default:
		status = mutedStyle.Render("no data fetched yet")
	}

	return fmt.Sprintf("%s %s  %s", labelStyle.Render("Time Range:"), valueStyle.Render(rangeText), status)
}

// renderTabs draws the tab bar.
func (m Model) renderTabs() string {
	ocean := inactiveTabStyle.Render("Ocean Conditions")
	migration := inactiveTabStyle.Render("Whale Migration")

	if m.activeTab == TabOcean {
		ocean = activeTabStyle.Render("Ocean Conditions")
	} else {
		migration = activeTabStyle.Render("Whale Migration")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, ocean, " ", migration)
}
