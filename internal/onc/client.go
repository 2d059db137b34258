package onc

import (
	"context"

	"github.com/shreymonka/marine-migration/internal/timerange"
)

// ScalarDataClient defines the interface for fetching scalar sensor data from
// Ocean Networks Canada.
type ScalarDataClient interface {
	// GetScalarData retrieves clean scalar samples for one device over a
	// query window. resampleSeconds > 0 requests server-side averaging over
	// buckets of that width; 0 fetches raw cadence.
	GetScalarData(ctx context.Context, deviceCode string, win timerange.Window, resampleSeconds int) (*ScalarDataResponse, error)
}

// ScalarDataResponse is the payload returned by the scalardata/device endpoint.
type ScalarDataResponse struct {
	SensorData []SensorBlock `json:"sensorData"`
}

// SensorBlock is one channel of the response: a named scalar time series.
type SensorBlock struct {
	SensorName    string      `json:"sensorName"`
	UnitOfMeasure string      `json:"unitOfMeasure"`
	Data          SampleBlock `json:"data"`
}

// SampleBlock pairs sample instants with values for one channel. Upstream does
// not guarantee the two arrays have equal length; the normalizer reconciles
// them. Gaps in values arrive as JSON null and decode to nil.
type SampleBlock struct {
	SampleTimes []string   `json:"sampleTimes"`
	Values      []*float64 `json:"values"`
}
