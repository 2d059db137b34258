package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shreymonka/marine-migration/internal/config"
	"github.com/shreymonka/marine-migration/internal/database"
	"github.com/shreymonka/marine-migration/internal/devices"
	"github.com/shreymonka/marine-migration/internal/timerange"
	"github.com/shreymonka/marine-migration/internal/ui"
)

func main() {
	timeRange := flag.String("range", "", "Initial time range (e.g. \"Past 7 Days\"); overrides the saved preference")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		os.Exit(1)
	}

	dbPath := database.DBPath()
	if err := prepareDatabase(dbPath); err != nil {
		fmt.Printf("Database error: %v\n", err)
		os.Exit(1)
	}

	opts := ui.Options{
		DBPath:          dbPath,
		InitialSelector: initialSelector(dbPath, *timeRange),
	}
	if dev, err := devices.GetDeviceByCode(dbPath, cfg.DeviceCode); err == nil && dev != nil {
		opts.DeviceName = dev.Name
	}

	p := tea.NewProgram(ui.NewModel(cfg, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// prepareDatabase seeds the device catalog on first run and makes sure the
// preferences table exists.
func prepareDatabase(dbPath string) error {
	needsProvisioning, err := devices.NeedsProvisioning(dbPath)
	if err != nil {
		return err
	}
	if needsProvisioning {
		if err := devices.ProvisionDeviceCatalog(dbPath, nil); err != nil {
			return err
		}
	}
	return database.EnsurePrefsSchema(dbPath)
}

// initialSelector resolves the starting time range: the --range flag wins,
// then the saved preference, then the package default.
func initialSelector(dbPath, flagValue string) timerange.Selector {
	if flagValue != "" {
		return timerange.Selector(flagValue)
	}
	saved, err := database.LoadPref(dbPath, "time_range")
	if err != nil || saved == "" {
		return ""
	}
	return timerange.Selector(saved)
}
