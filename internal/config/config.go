package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL         = "https://data.oceannetworks.ca/api"
	defaultDeviceCode      = "SBEDSPHOXV2SN7212038"
	defaultFluorometerCode = "WETLABSFLNTUSN4014"
	defaultFetchTimeout    = 30 * time.Second
	defaultRowLimit        = 5000
)

// Config holds runtime configuration for the dashboard.
type Config struct {
	BaseURL          string
	Token            string
	DeviceCode       string
	FluorometerCode  string // empty disables the supplemental chlorophyll fetch
	FetchTimeout     time.Duration
	RowLimit         int
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.Token = strings.TrimSpace(os.Getenv("ONC_TOKEN"))
	if cfg.Token == "" {
		return cfg, errors.New("ONC_TOKEN is required")
	}

	cfg.BaseURL = strings.TrimSpace(os.Getenv("ONC_BASE_URL"))
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	cfg.DeviceCode = strings.TrimSpace(os.Getenv("ONC_DEVICE_CODE"))
	if cfg.DeviceCode == "" {
		cfg.DeviceCode = defaultDeviceCode
	}

	cfg.FluorometerCode = strings.TrimSpace(os.Getenv("ONC_FLUOROMETER_CODE"))
	if cfg.FluorometerCode == "" {
		cfg.FluorometerCode = defaultFluorometerCode
	}

	cfg.FetchTimeout = defaultFetchTimeout
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}

	cfg.RowLimit = defaultRowLimit
	if v := strings.TrimSpace(os.Getenv("ROW_LIMIT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid ROW_LIMIT %q", v)
		}
		cfg.RowLimit = n
	}

	return cfg, nil
}
