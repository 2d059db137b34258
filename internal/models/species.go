package models

// ValueRange is an inclusive reference range for an environmental parameter.
type ValueRange struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the range.
func (r ValueRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// PreyProfile describes the environmental preferences of one humpback prey
// species in Holyrood waters.
type PreyProfile struct {
	Name             string
	TempRange        ValueRange // degrees C
	ChlorophyllRange ValueRange // mg/m3
	PeakSeason       string
}

// PreyProfiles is the fixed prey reference registry. Ranges come from DFO and
// Memorial University survey data and are reference values, not tunables.
var PreyProfiles = []PreyProfile{
	{
		Name:             "Capelin",
		TempRange:        ValueRange{Min: 2, Max: 12},
		ChlorophyllRange: ValueRange{Min: 0.5, Max: 3.0},
		PeakSeason:       "June-July",
	},
	{
		Name:             "Krill",
		TempRange:        ValueRange{Min: -1.5, Max: 10},
		ChlorophyllRange: ValueRange{Min: 1.0, Max: 5.0},
		PeakSeason:       "April-September",
	},
	{
		Name:             "Herring",
		TempRange:        ValueRange{Min: 4, Max: 15},
		ChlorophyllRange: ValueRange{Min: 0.3, Max: 2.5},
		PeakSeason:       "May-June & Aug-Sep",
	},
}

// ImpactStatus grades chlorophyll levels by feeding-ground potential.
type ImpactStatus string

const (
	ImpactHigh     ImpactStatus = "High"
	ImpactModerate ImpactStatus = "Moderate"
	ImpactLow      ImpactStatus = "Low"
)

// ChlorophyllAssessment is the result of grading a chlorophyll reading.
type ChlorophyllAssessment struct {
	Status      ImpactStatus
	Description string
}

// ChlorophyllImpact grades a chlorophyll level (mg/m3) against the feeding
// thresholds observed in migration research: above 2.0 marks prime feeding
// grounds, above 0.5 moderate activity.
func ChlorophyllImpact(level float64) ChlorophyllAssessment {
	switch {
	case level > 2.0:
		return ChlorophyllAssessment{
			Status:      ImpactHigh,
			Description: "Strong correlation with whale presence - Prime feeding conditions",
		}
	case level > 0.5:
		return ChlorophyllAssessment{
			Status:      ImpactModerate,
			Description: "Moderate feeding probability - Some whale activity expected",
		}
	default:
		return ChlorophyllAssessment{
			Status:      ImpactLow,
			Description: "Limited feeding opportunities - Reduced whale presence likely",
		}
	}
}

// MonthlyPresence holds per-month presence levels (0 absent .. 3 high) for one
// seasonal indicator, January first.
type MonthlyPresence struct {
	Name   string
	Levels [12]int
}

// PresenceCalendar is the fixed seasonal reference for the migration view.
var PresenceCalendar = []MonthlyPresence{
	{Name: "Humpback Whales", Levels: [12]int{0, 0, 0, 0, 1, 2, 3, 3, 2, 1, 0, 0}},
	{Name: "Chlorophyll", Levels: [12]int{1, 1, 1, 3, 3, 2, 1, 1, 1, 1, 1, 1}},
	{Name: "Krill", Levels: [12]int{1, 1, 1, 2, 3, 3, 3, 3, 2, 1, 1, 1}},
	{Name: "Herring", Levels: [12]int{0, 0, 0, 0, 2, 1, 0, 2, 2, 1, 0, 0}},
}
