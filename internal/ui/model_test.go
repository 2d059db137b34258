package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shreymonka/marine-migration/internal/config"
	"github.com/shreymonka/marine-migration/internal/models"
	"github.com/shreymonka/marine-migration/internal/normalize"
	"github.com/shreymonka/marine-migration/internal/onc"
	"github.com/shreymonka/marine-migration/internal/timerange"
)

func testConfig() config.Config {
	return config.Config{
		BaseURL:      "https://example.test/api",
		Token:        "token",
		DeviceCode:   "DEV1",
		FetchTimeout: 30 * time.Second,
		RowLimit:     5000,
	}
}

func fp(v float64) *float64 {
	return &v
}

// resultWithData builds a normalization result with three rows of temperature.
func resultWithData(t *testing.T) normalize.Result {
	t.Helper()
	res := normalize.Normalize(&onc.ScalarDataResponse{
		SensorData: []onc.SensorBlock{
			{
				SensorName: models.ChannelTemperature,
				Data: onc.SampleBlock{
					SampleTimes: []string{
						"2024-06-01T12:00:00.000Z",
						"2024-06-01T12:01:00.000Z",
						"2024-06-01T12:02:00.000Z",
					},
					Values: []*float64{fp(5.1), fp(5.2), fp(5.3)},
				},
			},
		},
	}, nil)
	if res.Failed() {
		t.Fatalf("fixture normalization failed: %v", res.Err)
	}
	return res
}

func TestNewModel(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	if m.state != StateLoading {
		t.Errorf("NewModel() state = %v, want StateLoading", m.state)
	}
	if m.activeTab != TabOcean {
		t.Errorf("NewModel() activeTab = %v, want TabOcean", m.activeTab)
	}
	if m.Selector() != timerange.Past10Minutes {
		t.Errorf("default selector = %q, want %q", m.Selector(), timerange.Past10Minutes)
	}
	if !m.table.IsEmpty() {
		t.Error("NewModel() should start with an empty table")
	}
}

func TestNewModel_InitialSelector(t *testing.T) {
	m := NewModel(testConfig(), Options{InitialSelector: timerange.Past7Days})

	if m.Selector() != timerange.Past7Days {
		t.Errorf("selector = %q, want %q", m.Selector(), timerange.Past7Days)
	}

	// Unknown stored selector falls back to the default
	m = NewModel(testConfig(), Options{InitialSelector: timerange.Selector("Past Eon")})
	if m.Selector() != timerange.Past10Minutes {
		t.Errorf("selector = %q, want default for unknown value", m.Selector())
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updatedModel.(Model)

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_Update_ErrorMsg(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	updatedModel, _ := m.Update(errMsg{err: errors.New("boom")})
	m = updatedModel.(Model)

	if m.state != StateError {
		t.Errorf("After errMsg, state = %v, want StateError", m.state)
	}
	if m.err == nil {
		t.Error("After errMsg, err should not be nil")
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected Ctrl+C to return quit command")
	}
}

func TestModel_DataFetched_ReplacesTable(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	updatedModel, _ := m.Update(dataFetchedMsg{
		result:    resultWithData(t),
		fetchedAt: time.Now(),
	})
	m = updatedModel.(Model)

	if m.state != StateDashboard {
		t.Errorf("state = %v, want StateDashboard", m.state)
	}
	if m.table.Len() != 3 {
		t.Errorf("table rows = %d, want 3", m.table.Len())
	}
	if m.statusMsg != "" {
		t.Errorf("statusMsg = %q, want empty on success", m.statusMsg)
	}
}

func TestModel_FetchFailure_KeepsTable(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	// Load data first
	updatedModel, _ := m.Update(dataFetchedMsg{result: resultWithData(t), fetchedAt: time.Now()})
	m = updatedModel.(Model)

	// Then a transport failure
	updatedModel, _ = m.Update(dataFetchedMsg{err: errors.New("connection refused")})
	m = updatedModel.(Model)

	if m.table.Len() != 3 {
		t.Errorf("table rows = %d, want 3 (previous table kept)", m.table.Len())
	}
	if m.statusMsg == "" {
		t.Error("transport failure should surface a warning")
	}
	if m.statusIsError {
		t.Error("transport failure is a warning, not a processing error")
	}
}

func TestModel_ProcessingFailure_EmptiesTable(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	updatedModel, _ := m.Update(dataFetchedMsg{result: resultWithData(t), fetchedAt: time.Now()})
	m = updatedModel.(Model)

	failed := normalize.Normalize(&onc.ScalarDataResponse{
		SensorData: []onc.SensorBlock{
			{
				SensorName: models.ChannelTemperature,
				Data: onc.SampleBlock{
					SampleTimes: []string{"garbage"},
					Values:      []*float64{fp(1)},
				},
			},
		},
	}, nil)
	if !failed.Failed() {
		t.Fatal("fixture should fail normalization")
	}

	updatedModel, _ = m.Update(dataFetchedMsg{result: failed})
	m = updatedModel.(Model)

	if !m.table.IsEmpty() {
		t.Error("processing failure should replace the table with an empty one")
	}
	if !m.statusIsError || m.statusMsg == "" {
		t.Error("processing failure should surface an error message")
	}
}

func TestModel_FetchSkipped_LeavesTable(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	updatedModel, _ := m.Update(dataFetchedMsg{result: resultWithData(t), fetchedAt: time.Now()})
	m = updatedModel.(Model)

	updatedModel, _ = m.Update(fetchSkippedMsg{})
	m = updatedModel.(Model)

	if m.table.Len() != 3 {
		t.Errorf("table rows = %d, want 3 (skip must not touch the table)", m.table.Len())
	}
	if m.statusMsg == "" {
		t.Error("skip should be reported in the status line")
	}
}

func TestModel_SelectorCycling(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updatedModel.(Model)
	if m.Selector() != timerange.Past2Hours {
		t.Errorf("after right, selector = %q, want %q", m.Selector(), timerange.Past2Hours)
	}

	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updatedModel.(Model)
	if m.Selector() != timerange.Past10Minutes {
		t.Errorf("after left, selector = %q, want %q", m.Selector(), timerange.Past10Minutes)
	}

	// Left from the first entry wraps to the last
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updatedModel.(Model)
	if m.Selector() != timerange.AllAvailable {
		t.Errorf("after wrap, selector = %q, want %q", m.Selector(), timerange.AllAvailable)
	}
}

func TestModel_TabSwitching(t *testing.T) {
	m := NewModel(testConfig(), Options{})
	m.state = StateDashboard

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updatedModel.(Model)
	if m.activeTab != TabMigration {
		t.Errorf("activeTab = %v, want TabMigration", m.activeTab)
	}

	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updatedModel.(Model)
	if m.activeTab != TabOcean {
		t.Errorf("activeTab = %v, want TabOcean", m.activeTab)
	}
}

func TestModel_View_EmptyTable(t *testing.T) {
	m := NewModel(testConfig(), Options{})
	m.state = StateDashboard
	m.width = 120
	m.height = 40

	view := m.View()
	if !strings.Contains(view, "No data available") {
		t.Error("dashboard with empty table should say no data is available")
	}
}

func TestModel_View_WithData(t *testing.T) {
	m := NewModel(testConfig(), Options{DeviceName: "Sea-Bird SeapHOx V2"})
	m.state = StateDashboard
	m.width = 120
	m.height = 40

	updatedModel, _ := m.Update(dataFetchedMsg{result: resultWithData(t), fetchedAt: time.Now()})
	m = updatedModel.(Model)

	view := m.View()
	if !strings.Contains(view, "Holyrood Ocean Dashboard") {
		t.Error("dashboard header missing")
	}
	if !strings.Contains(view, "Sea-Bird SeapHOx V2") {
		t.Error("instrument name missing from header")
	}

	// Migration tab renders the reference panes
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updatedModel.(Model)
	view = m.View()
	if !strings.Contains(view, "Prey Species Reference") {
		t.Error("migration tab should render the prey reference pane")
	}
}
