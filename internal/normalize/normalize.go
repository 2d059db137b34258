// Package normalize turns raw ONC scalar-data payloads into a single
// rectangular table that is always safe to chart: aligned row counts, every
// expected channel present, timestamps in Atlantic civil time.
package normalize

import (
	"fmt"
	"time"
	// Bundle the tz database so the Halifax conversion works on hosts
	// without system zoneinfo.
	_ "time/tzdata"

	"github.com/shreymonka/marine-migration/internal/models"
	"github.com/shreymonka/marine-migration/internal/onc"
)

// displayZone is the civil time zone every timestamp is converted to.
const displayZone = "America/Halifax"

// ExpectedChannels is the fixed registry of channels the primary SeapHOx
// instrument reports. Every name is guaranteed to exist as a column in the
// normalized output even when absent upstream.
var ExpectedChannels = []string{
	models.ChannelPH,
	models.ChannelOxygen,
	models.ChannelSalinity,
	models.ChannelTemperature,
	models.ChannelDensity,
}

// SupplementalChannel is the reserved channel name merged in from the
// auxiliary fluorometer payload.
const SupplementalChannel = models.ChannelChlorophyll

// Result is the outcome of one normalization call. Table is never nil; a
// failed call carries an empty table plus the reason in Err so callers can
// show a message without ever receiving a panic. A shape miss (nothing to
// show) is an empty table with a nil Err.
type Result struct {
	Table *models.Table
	Err   error
}

// Failed reports whether normalization hit an unexpected error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// timestampLayouts are tried in order. Upstream timestamps are zone-naive
// with UTC semantics; layouts without a zone suffix parse in UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

// Normalize builds a table from the primary instrument payload, merging the
// reserved supplemental channel from the fluorometer payload when present.
//
// The supplemental payload's own timestamp vector is never consulted: its
// cadence is assumed to match the primary after shared resampling upstream.
// That assumption is inherited from the source system and deliberately not
// verified here.
func Normalize(primary, supplemental *onc.ScalarDataResponse) Result {
	empty := Result{Table: models.NewTable(nil)}

	if primary == nil || len(primary.SensorData) == 0 {
		return empty
	}

	// Canonical timestamps come from the first block that has any; blocks
	// seen later contribute values only.
	var rawTimes []string
	for _, block := range primary.SensorData {
		if len(block.Data.SampleTimes) > 0 {
			rawTimes = block.Data.SampleTimes
			break
		}
	}
	if rawTimes == nil {
		return empty
	}

	loc, err := time.LoadLocation(displayZone)
	if err != nil {
		return Result{Table: models.NewTable(nil), Err: fmt.Errorf("loading %s zone: %w", displayZone, err)}
	}

	times := make([]time.Time, len(rawTimes))
	for i, raw := range rawTimes {
		ts, err := parseUTC(raw)
		if err != nil {
			return Result{Table: models.NewTable(nil), Err: fmt.Errorf("parsing timestamp %q: %w", raw, err)}
		}
		times[i] = ts.In(loc)
	}

	table := models.NewTable(times)

	for _, block := range primary.SensorData {
		if block.Data.Values == nil {
			continue
		}
		table.AddColumn(block.SensorName, alignValues(block.Data.Values, len(times)))
	}

	if supplemental != nil {
		for _, block := range supplemental.SensorData {
			if block.SensorName != SupplementalChannel || block.Data.Values == nil {
				continue
			}
			table.AddColumn(SupplementalChannel, alignValues(block.Data.Values, len(times)))
			break
		}
	}

	for _, name := range ExpectedChannels {
		if !table.HasColumn(name) {
			table.AddColumn(name, nullColumn(len(times)))
		}
	}

	return Result{Table: table}
}

// parseUTC parses a timestamp, treating zone-naive forms as UTC.
func parseUTC(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// alignValues reconciles a channel's value array against the canonical
// timestamp count: longer arrays are truncated, shorter ones padded with null
// markers. Earlier revisions of the pipeline only truncated; padding completes
// the behavior so short channels still chart.
func alignValues(values []*float64, length int) []float64 {
	out := make([]float64, length)
	for i := 0; i < length; i++ {
		if i < len(values) && values[i] != nil {
			out[i] = *values[i]
		} else {
			out[i] = models.Null()
		}
	}
	return out
}

func nullColumn(length int) []float64 {
	col := make([]float64, length)
	for i := range col {
		col[i] = models.Null()
	}
	return col
}
