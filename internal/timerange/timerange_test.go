package timerange

import (
	"testing"
	"time"
)

func TestResolve_Durations(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		sel  Selector
		want time.Duration
	}{
		{Past10Minutes, 10 * time.Minute},
		{Past2Hours, 2 * time.Hour},
		{Past24Hours, 24 * time.Hour},
		{Past7Days, 7 * 24 * time.Hour},
		{Past1Month, 30 * 24 * time.Hour},
		{Past6Months, 180 * 24 * time.Hour},
		{Past1Year, 365 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.sel), func(t *testing.T) {
			win, ok := Resolve(tt.sel, now)
			if !ok {
				t.Fatalf("Resolve(%q) ok = false, want true", tt.sel)
			}
			if got := win.End.Sub(win.Start); got != tt.want {
				t.Errorf("window span = %v, want %v", got, tt.want)
			}
			if !win.Start.Before(win.End) {
				t.Errorf("Start %v not before End %v", win.Start, win.End)
			}
			if !win.End.Equal(now) {
				t.Errorf("End = %v, want now (%v)", win.End, now)
			}
		})
	}
}

func TestResolve_AllAvailable(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	win, ok := Resolve(AllAvailable, now)
	if !ok {
		t.Fatal("Resolve(AllAvailable) ok = false, want true")
	}

	wantStart := time.Date(2021, time.August, 1, 0, 0, 0, 0, time.UTC)
	if !win.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want deployment epoch %v", win.Start, wantStart)
	}
	if !win.End.Equal(now) {
		t.Errorf("End = %v, want now", win.End)
	}
}

func TestResolve_UnknownSelector(t *testing.T) {
	now := time.Now()

	if _, ok := Resolve(Selector("Past 3 Fortnights"), now); ok {
		t.Error("unknown selector resolved; want no interval")
	}
	if _, ok := Resolve(Selector(""), now); ok {
		t.Error("empty selector resolved; want no interval")
	}
}

func TestResolve_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("ADT", -3*60*60)
	now := time.Date(2024, 6, 15, 15, 30, 0, 0, loc)

	win, _ := Resolve(Past2Hours, now)
	if win.End.Location() != time.UTC {
		t.Errorf("End location = %v, want UTC", win.End.Location())
	}
	if !win.End.Equal(now) {
		t.Errorf("End = %v, want same instant as now", win.End)
	}
}

func TestResamplePeriod(t *testing.T) {
	tests := []struct {
		sel     Selector
		want    int
		wantOK  bool
	}{
		{Past10Minutes, 0, false},
		{Past2Hours, 0, false},
		{Past24Hours, 0, false},
		{Past7Days, 0, false},
		{Past1Month, 0, false},
		{Past6Months, 86400, true},
		{Past1Year, 259200, true},
		{AllAvailable, 259200, true},
		{Selector("bogus"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.sel), func(t *testing.T) {
			got, ok := ResamplePeriod(tt.sel)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("period = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectors_OrderAndCoverage(t *testing.T) {
	sels := Selectors()
	if len(sels) != 8 {
		t.Fatalf("len(Selectors()) = %d, want 8", len(sels))
	}
	if sels[0] != Past10Minutes {
		t.Errorf("first selector = %q, want %q", sels[0], Past10Minutes)
	}
	if sels[len(sels)-1] != AllAvailable {
		t.Errorf("last selector = %q, want %q", sels[len(sels)-1], AllAvailable)
	}

	now := time.Now()
	for _, sel := range sels {
		if _, ok := Resolve(sel, now); !ok {
			t.Errorf("listed selector %q does not resolve", sel)
		}
	}
}
