package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shreymonka/marine-migration/internal/config"
	"github.com/shreymonka/marine-migration/internal/normalize"
	"github.com/shreymonka/marine-migration/internal/onc"
	"github.com/shreymonka/marine-migration/internal/timerange"
)

// dataFetchedMsg is sent when a fetch-and-normalize cycle completes.
type dataFetchedMsg struct {
	result    normalize.Result
	fetchedAt time.Time
	err       error // transport failure; result is unset
}

// fetchSkippedMsg is sent when the selector did not resolve to a window and
// the fetch was skipped; the current table must stay untouched.
type fetchSkippedMsg struct{}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// fetchData fetches the primary instrument payload and, when a fluorometer is
// configured, the supplemental chlorophyll payload, then normalizes both into
// one table. The two requests run one after another under a single deadline.
func fetchData(client onc.ScalarDataClient, cfg config.Config, sel timerange.Selector) tea.Cmd {
	return func() tea.Msg {
		win, ok := timerange.Resolve(sel, time.Now())
		if !ok {
			return fetchSkippedMsg{}
		}
		resampleSeconds, _ := timerange.ResamplePeriod(sel)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
		defer cancel()

		primary, err := client.GetScalarData(ctx, cfg.DeviceCode, win, resampleSeconds)
		if err != nil {
			return dataFetchedMsg{err: err}
		}

		// The fluorometer is best-effort: its absence only costs the
		// chlorophyll column.
		var supplemental *onc.ScalarDataResponse
		if cfg.FluorometerCode != "" {
			supplemental, _ = client.GetScalarData(ctx, cfg.FluorometerCode, win, resampleSeconds)
		}

		return dataFetchedMsg{
			result:    normalize.Normalize(primary, supplemental),
			fetchedAt: time.Now(),
		}
	}
}
