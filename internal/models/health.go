package models

// Channel names as reported by the ONC scalardata API.
const (
	ChannelPH          = "External pH (Dynamic Salinity)"
	ChannelOxygen      = "Oxygen Concentration Corrected"
	ChannelSalinity    = "Practical Salinity"
	ChannelTemperature = "Temperature"
	ChannelDensity     = "Density"
	ChannelChlorophyll = "Chlorophyll"
)

// Coefficients of the ecosystem health score. These are a fixed policy choice
// and must not be re-derived from the data.
const (
	healthOxygenWeight = 10.0
	healthPHWeight     = 2.0
)

// HealthScores computes the ecosystem health score per row:
//
//	10*oxygen - 2*pH - temperature
//
// Rows where any of the three inputs is null score null.
func HealthScores(t *Table) []float64 {
	scores := make([]float64, t.Len())
	oxygen, _ := t.Column(ChannelOxygen)
	ph, _ := t.Column(ChannelPH)
	temp, _ := t.Column(ChannelTemperature)

	for i := range scores {
		o := columnValue(oxygen, i)
		p := columnValue(ph, i)
		c := columnValue(temp, i)
		if IsNull(o) || IsNull(p) || IsNull(c) {
			scores[i] = Null()
			continue
		}
		scores[i] = healthOxygenWeight*o - healthPHWeight*p - c
	}
	return scores
}

func columnValue(values []float64, i int) float64 {
	if i >= len(values) {
		return Null()
	}
	return values[i]
}
