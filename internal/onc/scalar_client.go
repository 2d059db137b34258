package onc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shreymonka/marine-migration/internal/timerange"
)

// Query parameters fixed by the dashboard: bounded payloads, array-shaped
// output and QAQC-clean samples only.
const (
	defaultRowLimit = 5000
	outputFormat    = "array"
	qualityControl  = "clean"
	resampleType    = "average"
)

// apiTimeFormat is the ISO-8601 millisecond layout the ONC API expects.
const apiTimeFormat = "2006-01-02T15:04:05.000Z"

// ONCScalarClient implements ScalarDataClient against the ONC web services API.
type ONCScalarClient struct {
	baseURL    string
	token      string
	rowLimit   int
	httpClient *http.Client
}

// NewScalarClient creates a client for the Ocean Networks Canada API. timeout
// bounds every request so a stalled upstream cannot hang the dashboard.
// rowLimit <= 0 falls back to the default cap.
func NewScalarClient(baseURL, token string, rowLimit int, timeout time.Duration) *ONCScalarClient {
	if rowLimit <= 0 {
		rowLimit = defaultRowLimit
	}
	return &ONCScalarClient{
		baseURL:  baseURL,
		token:    token,
		rowLimit: rowLimit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetScalarData retrieves clean scalar samples for a device over the window.
func (c *ONCScalarClient) GetScalarData(ctx context.Context, deviceCode string, win timerange.Window, resampleSeconds int) (*ScalarDataResponse, error) {
	params := url.Values{}
	params.Add("deviceCode", deviceCode)
	params.Add("rowLimit", strconv.Itoa(c.rowLimit))
	params.Add("outputFormat", outputFormat)
	params.Add("qualityControl", qualityControl)
	params.Add("dateFrom", win.Start.UTC().Format(apiTimeFormat))
	params.Add("dateTo", win.End.UTC().Format(apiTimeFormat))
	params.Add("token", c.token)

	if resampleSeconds > 0 {
		params.Add("resamplePeriod", strconv.Itoa(resampleSeconds))
		params.Add("resampleType", resampleType)
	}

	requestURL := fmt.Sprintf("%s/scalardata/device?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scalar data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d for device %s", resp.StatusCode, deviceCode)
	}

	var payload ScalarDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &payload, nil
}
