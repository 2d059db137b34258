package devices

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var provisionMu sync.Mutex

// defaultDevices seeds the catalog. Deployment dates are fixed facts about the
// observatory, kept here as explicit data.
var defaultDevices = []Device{
	{
		Code:       "SBEDSPHOXV2SN7212038",
		Name:       "Sea-Bird SeapHOx V2",
		Category:   "CTD / pH / Oxygen",
		DeployedAt: time.Date(2021, time.August, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		Code:       "WETLABSFLNTUSN4014",
		Name:       "WET Labs ECO FLNTU Fluorometer",
		Category:   "Chlorophyll / Turbidity",
		DeployedAt: time.Date(2021, time.October, 12, 0, 0, 0, 0, time.UTC),
	},
}

// NeedsProvisioning checks if the device catalog needs to be provisioned
func NeedsProvisioning(dbPath string) (bool, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return true, nil
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return false, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='devices'").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking for devices table: %w", err)
	}

	return count == 0, nil
}

// ProvisionDeviceCatalog creates the devices table and seeds it with the
// default instrument set. Safe to call repeatedly.
func ProvisionDeviceCatalog(dbPath string, progressChan chan<- string) error {
	provisionMu.Lock()
	defer provisionMu.Unlock()

	needs, err := NeedsProvisioning(dbPath)
	if err != nil {
		return err
	}
	if !needs {
		return nil
	}

	sendProgress := func(msg string) {
		if progressChan != nil {
			progressChan <- msg
		} else {
			log.Println(msg)
		}
	}

	sendProgress("Device catalog not found, provisioning...")

	dataDir := filepath.Dir(dbPath)
	if err = os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database for building: %w", err)
	}
	defer db.Close()

	if err = buildDeviceCatalog(db, defaultDevices); err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	sendProgress(fmt.Sprintf("Successfully provisioned device catalog at %s", dbPath))
	return nil
}

// buildDeviceCatalog creates the devices table and inserts the seed set
func buildDeviceCatalog(db *sql.DB, seed []Device) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS devices (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT,
			deployed_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating devices table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() // Rollback on error

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO devices (code, name, category, deployed_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range seed {
		if _, err := stmt.Exec(d.Code, d.Name, d.Category, d.DeployedAt.UTC().Format(time.RFC3339)); err != nil {
			log.Printf("Error inserting device %s: %v", d.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
