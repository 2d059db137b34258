package timerange

import "time"

// Selector is a human-readable time-window choice offered by the dashboard.
type Selector string

const (
	Past10Minutes Selector = "Past 10 Minutes"
	Past2Hours    Selector = "Past 2 Hours"
	Past24Hours   Selector = "Past 24 Hours"
	Past7Days     Selector = "Past 7 Days"
	Past1Month    Selector = "Past 1 Month"
	Past6Months   Selector = "Past 6 Months"
	Past1Year     Selector = "Past 1 Year"
	AllAvailable  Selector = "All Available Data"
)

// Window is a concrete half-open query interval, both instants UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// deploymentEpoch marks the start of the Holyrood SeapHOx deployment and
// anchors the "All Available Data" window.
var deploymentEpoch = time.Date(2021, time.August, 1, 0, 0, 0, 0, time.UTC)

// windows maps each selector to the duration subtracted from "now". The month
// and year entries are calendar approximations (30/180/365 days) kept as
// explicit data so they can be audited without touching control flow.
var windows = map[Selector]time.Duration{
	Past10Minutes: 10 * time.Minute,
	Past2Hours:    2 * time.Hour,
	Past24Hours:   24 * time.Hour,
	Past7Days:     7 * 24 * time.Hour,
	Past1Month:    30 * 24 * time.Hour,
	Past6Months:   180 * 24 * time.Hour,
	Past1Year:     365 * 24 * time.Hour,
}

// resamplePeriods maps long-window selectors to the server-side downsampling
// period in seconds. The breakpoints trade bandwidth against resolution and
// are policy, not derived from interval length.
var resamplePeriods = map[Selector]int{
	Past6Months:  86400,  // 1 day buckets
	Past1Year:    259200, // 3 day buckets
	AllAvailable: 259200,
}

// selectorOrder is the display order used by the dashboard selector.
var selectorOrder = []Selector{
	Past10Minutes,
	Past2Hours,
	Past24Hours,
	Past7Days,
	Past1Month,
	Past6Months,
	Past1Year,
	AllAvailable,
}

// Resolve maps a selector to a concrete query window ending at now. The second
// return is false for unrecognized selectors; callers must skip the fetch in
// that case rather than substitute a default interval.
func Resolve(sel Selector, now time.Time) (Window, bool) {
	now = now.UTC()
	if sel == AllAvailable {
		return Window{Start: deploymentEpoch, End: now}, true
	}
	d, ok := windows[sel]
	if !ok {
		return Window{}, false
	}
	return Window{Start: now.Add(-d), End: now}, true
}

// ResamplePeriod returns the downsampling period in seconds for selectors that
// request one. ok is false for windows fetched at raw cadence.
func ResamplePeriod(sel Selector) (int, bool) {
	seconds, ok := resamplePeriods[sel]
	return seconds, ok
}

// Selectors returns all supported selectors in display order.
func Selectors() []Selector {
	out := make([]Selector, len(selectorOrder))
	copy(out, selectorOrder)
	return out
}
