package models

// Stats summarizes one channel of a normalized table.
type Stats struct {
	Mean  float64
	Min   float64
	Max   float64
	Count int // non-null samples
}

// ColumnStats computes mean, min and max over the non-null entries of values.
// ok is false when the column has no usable samples.
func ColumnStats(values []float64) (Stats, bool) {
	var s Stats
	sum := 0.0
	for _, v := range values {
		if IsNull(v) {
			continue
		}
		if s.Count == 0 {
			s.Min = v
			s.Max = v
		} else {
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
		}
		sum += v
		s.Count++
	}
	if s.Count == 0 {
		return Stats{}, false
	}
	s.Mean = sum / float64(s.Count)
	return s, true
}
